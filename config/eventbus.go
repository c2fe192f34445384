package config

// EventBusConfig 事件注册表配置
type EventBusConfig struct {
	// Shared 是否使用进程级共享注册表
	//
	// 启用时 Fx 模块注入 eventbus.Default() 返回的实例，
	// 应用停止时由生命周期协调器重置。
	// 默认值: false（每个应用独立的注册表）
	Shared bool `json:"shared"`

	// ClearOnStop 应用停止时是否清空所有事件槽
	// 默认值: true
	ClearOnStop bool `json:"clear_on_stop"`
}

// DefaultEventBusConfig 返回默认的事件注册表配置
func DefaultEventBusConfig() EventBusConfig {
	return EventBusConfig{
		Shared:      false,
		ClearOnStop: true,
	}
}

// Validate 验证事件注册表配置
func (c *EventBusConfig) Validate() error {
	return nil
}
