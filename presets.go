package eventbus

import "github.com/dep2p/go-eventbus/config"

// ════════════════════════════════════════════════════════════════════════════
//                              预设配置常量
// ════════════════════════════════════════════════════════════════════════════

// 预设名称常量
const (
	// PresetDefault 默认预设
	PresetDefault = "default"

	// PresetMinimal 关闭指标，对象池不预填充
	PresetMinimal = "minimal"

	// PresetDebug 调试日志与 Fx 事件输出
	PresetDebug = "debug"
)

// GetConfig 返回应用预设后的配置
//
// 示例：
//
//	cfg, _ := eventbus.GetConfig(eventbus.PresetMinimal)
//	cfg.Pool.DefaultInitialSize = 4
//	rt, _ := eventbus.New(eventbus.WithConfig(cfg))
func GetConfig(preset string) (*config.Config, error) {
	cfg := config.NewConfig()
	if err := config.ApplyPreset(cfg, preset); err != nil {
		return nil, err
	}
	return cfg, nil
}
