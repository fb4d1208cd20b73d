package config

import (
	"fmt"
	"strings"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别
	//
	// 支持 "debug"、"info"、"warn"、"error"，
	// 以及按子系统覆盖的形式 "core/event=debug,info"。
	// 为空时沿用 EVENTKIT_LOG_LEVEL 环境变量。
	Level string `json:"level,omitempty"`

	// Format 输出格式："text" 或 "json"，为空时沿用环境变量
	Format string `json:"format,omitempty"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Format)
	}
	return nil
}
