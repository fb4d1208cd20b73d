// Package logger 提供统一的日志接口
//
// 级别规格（EVENTKIT_LOG_LEVEL 与 Apply 共用）：逗号分隔的若干项，
// "子系统=级别" 只作用于该子系统，单独的 "级别" 作为默认级别，
// 例如 core/event=debug,core/pump=warn,info。
package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

// 环境变量名
const (
	EnvLevel     = "EVENTKIT_LOG_LEVEL"
	EnvFormat    = "EVENTKIT_LOG_FORMAT"
	EnvAddSource = "EVENTKIT_LOG_ADD_SOURCE"
)

// LogFormat 日志输出格式
type LogFormat int

const (
	// FormatText 文本格式（默认）
	FormatText LogFormat = iota
	// FormatJSON JSON 格式
	FormatJSON
)

// Config 启动时从环境变量读取的日志配置
type Config struct {
	DefaultLevel    slog.Level
	SubsystemLevels map[string]slog.Level
	Format          LogFormat
	AddSource       bool
}

// LevelForSubsystem 子系统有单独级别时返回该级别，否则返回默认级别
func (c *Config) LevelForSubsystem(subsystem string) slog.Level {
	if level, ok := c.SubsystemLevels[subsystem]; ok {
		return level
	}
	return c.DefaultLevel
}

var (
	envConfig     *Config
	envConfigOnce sync.Once
)

// ConfigFromEnv 返回环境变量配置，只解析一次
func ConfigFromEnv() *Config {
	envConfigOnce.Do(func() {
		envConfig = loadEnvConfig()
	})
	return envConfig
}

func loadEnvConfig() *Config {
	cfg := &Config{
		DefaultLevel:    slog.LevelInfo,
		SubsystemLevels: make(map[string]slog.Level),
	}

	spec := parseLevelSpec(os.Getenv(EnvLevel))
	if spec.defaultLevel != nil {
		cfg.DefaultLevel = *spec.defaultLevel
	}
	for name, lvl := range spec.subsystems {
		cfg.SubsystemLevels[name] = lvl
	}

	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = ParseFormat(v)
	}
	switch os.Getenv(EnvAddSource) {
	case "", "false", "0":
	default:
		cfg.AddSource = true
	}
	return cfg
}

// levelSpec 解析后的级别规格
type levelSpec struct {
	defaultLevel *slog.Level
	subsystems   map[string]slog.Level

	// invalid 无法识别的级别名称
	invalid []string
}

// parseLevelSpec 解析级别规格，空项被忽略，后出现的项覆盖先出现的项
func parseLevelSpec(s string) levelSpec {
	spec := levelSpec{subsystems: make(map[string]slog.Level)}
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		subsystem, name, scoped := strings.Cut(item, "=")
		if !scoped {
			name = subsystem
		}
		lvl, ok := ParseLevel(strings.TrimSpace(name))
		if !ok {
			spec.invalid = append(spec.invalid, name)
			continue
		}
		if scoped {
			spec.subsystems[strings.TrimSpace(subsystem)] = lvl
		} else {
			spec.defaultLevel = &lvl
		}
	}
	return spec
}

// ParseLevel 解析级别名称，不区分大小写
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// ParseFormat 解析格式名称，只有 "json" 得到 FormatJSON
func ParseFormat(name string) LogFormat {
	if strings.EqualFold(strings.TrimSpace(name), "json") {
		return FormatJSON
	}
	return FormatText
}

// ResetConfig 丢弃已解析的环境变量配置，测试用
func ResetConfig() {
	envConfigOnce = sync.Once{}
	envConfig = nil
}
