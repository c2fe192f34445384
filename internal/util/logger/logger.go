// Package logger 提供 go-eventbus 的统一日志系统
//
// 基于标准库 log/slog，支持：
//   - 按子系统配置日志级别
//   - 环境变量配置（EVENTBUS_LOG_LEVEL, EVENTBUS_LOG_FORMAT）
//   - 运行时通过 Configure 重新配置
//
// 使用示例:
//
//	var log = logger.Logger("core/pool")
//	log.Debug("对象池已创建", "type", typ)
//
// 环境变量配置:
//
//	# 所有子系统为 warn，对象池为 debug
//	EVENTBUS_LOG_LEVEL=core/pool=debug,warn
//
//	# 使用 JSON 格式输出
//	EVENTBUS_LOG_FORMAT=json
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	mu       sync.RWMutex
	current  = ConfigFromEnv()
	handlers = make(map[string]*subsystemHandler)
	loggers  = make(map[string]*slog.Logger)
)

// Logger 获取指定子系统的 Logger
//
// 同一子系统在两次 Configure 之间返回相同的 Logger 实例。
func Logger(subsystem string) *slog.Logger {
	mu.RLock()
	l, ok := loggers[subsystem]
	mu.RUnlock()
	if ok {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[subsystem]; ok {
		return l
	}
	h := newHandler(subsystem, current.LevelForSubsystem(subsystem), current.Format)
	l = slog.New(h)
	handlers[subsystem] = h
	loggers[subsystem] = l
	return l
}

// Configure 使用给定的级别与格式重新配置
//
// 环境变量优先于参数：EVENTBUS_LOG_LEVEL 或 EVENTBUS_LOG_FORMAT 非空时覆盖对应参数。
// 已缓存的 Logger 被丢弃，之后的 Logger 调用按新配置创建。
func Configure(level, format string) {
	env := ConfigFromEnv()
	cfg := ParseConfig(level, format)
	if hasEnv(EnvLevel) {
		cfg.DefaultLevel = env.DefaultLevel
		cfg.SubsystemLevels = env.SubsystemLevels
	}
	if hasEnv(EnvFormat) {
		cfg.Format = env.Format
	}

	mu.Lock()
	current = cfg
	handlers = make(map[string]*subsystemHandler)
	loggers = make(map[string]*slog.Logger)
	mu.Unlock()
}

// Current 返回当前配置
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return *current
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	Logger(subsystem)

	mu.Lock()
	defer mu.Unlock()
	current.SubsystemLevels[subsystem] = level
	handlers[subsystem].SetLevel(level)
}

// SetGlobalLevel 设置所有子系统的日志级别
func SetGlobalLevel(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	current.DefaultLevel = level
	current.SubsystemLevels = make(map[string]slog.Level)
	for _, h := range handlers {
		h.SetLevel(level)
	}
}

// Discard 返回一个丢弃所有日志的 Logger
func Discard() *slog.Logger {
	return slog.New(DiscardHandler())
}

// SetOutput 设置全局日志输出目标
//
// 已创建的 Logger 同样会写入新的目标。
func SetOutput(w io.Writer) {
	globalOutputMu.Lock()
	globalOutput = w
	globalOutputMu.Unlock()
}
