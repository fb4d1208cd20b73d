// Package logger 提供 go-eventkit 的统一日志系统
//
// 基于标准库 log/slog，支持：
//   - 按子系统配置日志级别
//   - 环境变量配置（EVENTKIT_LOG_LEVEL, EVENTKIT_LOG_FORMAT）
//   - 运行时切换输出目标、级别与格式
//
// 使用示例:
//
//	package event
//
//	import "github.com/dep2p/go-eventkit/internal/util/logger"
//
//	var log = logger.Logger("core/event")
//
//	func foo() {
//	    log.Debug("emitter disposed", "emitter", name, "listeners", n)
//	}
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	// loggers 缓存各子系统的 Logger
	loggers sync.Map // map[string]*slog.Logger

	// handlers 缓存各子系统的 Handler（用于动态调整级别）
	handlers sync.Map // map[string]*subsystemHandler

	// globalLogger 全局默认 Logger
	globalLogger     *slog.Logger
	globalLoggerOnce sync.Once

	// overrideLevel 通过 Apply 设置的默认级别，覆盖环境变量中的默认级别
	overrideMu    sync.RWMutex
	overrideLevel *slog.Level

	// subsystemOverrides 通过 Apply 设置的子系统级别
	subsystemOverrides sync.Map // map[string]slog.Level
)

func init() {
	globalFormat.Store(int32(ConfigFromEnv().Format))
}

// Logger 获取指定子系统的 Logger
//
// 同一子系统多次调用会返回相同的 Logger 实例。
func Logger(subsystem string) *slog.Logger {
	if l, ok := loggers.Load(subsystem); ok {
		return l.(*slog.Logger)
	}

	cfg := ConfigFromEnv()
	level := cfg.LevelForSubsystem(subsystem)
	if _, explicit := cfg.SubsystemLevels[subsystem]; !explicit {
		overrideMu.RLock()
		if overrideLevel != nil {
			level = *overrideLevel
		}
		overrideMu.RUnlock()
	}
	if v, ok := subsystemOverrides.Load(subsystem); ok {
		level = v.(slog.Level)
	}

	handler := newHandler(subsystem, level, cfg.AddSource)
	l := slog.New(handler)

	actual, loaded := loggers.LoadOrStore(subsystem, l)
	if !loaded {
		handlers.Store(subsystem, handler)
	}

	return actual.(*slog.Logger)
}

// GlobalLogger 返回全局 Logger
//
// 用于不属于特定子系统的日志，或作为 fx 注入的默认 Logger。
func GlobalLogger() *slog.Logger {
	globalLoggerOnce.Do(func() {
		globalLogger = Logger("eventkit")
	})
	return globalLogger
}

// SetLevel 动态设置子系统的日志级别
func SetLevel(subsystem string, level slog.Level) {
	if h, ok := handlers.Load(subsystem); ok {
		h.(*subsystemHandler).SetLevel(level)
	}
}

// SetGlobalLevel 设置所有子系统的日志级别
//
// 之后新建的子系统 Logger 也使用该级别（环境变量中显式配置的子系统除外）。
func SetGlobalLevel(level slog.Level) {
	overrideMu.Lock()
	overrideLevel = &level
	overrideMu.Unlock()

	cfg := ConfigFromEnv()
	handlers.Range(func(key, value any) bool {
		name := key.(string)
		_, explicit := cfg.SubsystemLevels[name]
		_, overridden := subsystemOverrides.Load(name)
		if !explicit && !overridden {
			value.(*subsystemHandler).SetLevel(level)
		}
		return true
	})
}

// SetFormat 切换所有 Logger 的输出格式
func SetFormat(format LogFormat) {
	globalFormat.Store(int32(format))
}

// Apply 按名称应用日志级别与格式
//
// level 与 EVENTKIT_LOG_LEVEL 格式相同，例如 "core/event=debug,info"。
// 无法识别的级别名称被跳过，返回 false。
func Apply(level, format string) bool {
	spec := parseLevelSpec(level)
	for name, lvl := range spec.subsystems {
		subsystemOverrides.Store(name, lvl)
		SetLevel(name, lvl)
	}
	if spec.defaultLevel != nil {
		SetGlobalLevel(*spec.defaultLevel)
	}
	if format != "" {
		SetFormat(ParseFormat(format))
	}
	return len(spec.invalid) == 0
}

// Discard 返回一个丢弃所有日志的 Logger
//
// 主要用于测试，避免日志输出干扰测试结果。
func Discard() *slog.Logger {
	return slog.New(DiscardHandler())
}

// With 创建带有预设属性的 Logger
func With(subsystem string, args ...any) *slog.Logger {
	return Logger(subsystem).With(args...)
}

// SetOutput 设置全局日志输出目标
//
// 已创建的 Logger 同样写入新的 w。
func SetOutput(w io.Writer) {
	outputMu.Lock()
	output = w
	outputMu.Unlock()
}
