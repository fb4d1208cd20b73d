package main

import (
	"os"

	"github.com/dep2p/go-eventkit/config"
)

// ============================================================================
//                              配置加载（CLI 专用）
// ============================================================================

// loadConfig 加载配置
//
// 优先级（从高到低）：
//  1. 命令行参数
//  2. 环境变量（EVENTKIT_* 前缀）
//  3. 配置文件
//  4. 默认值
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if *configFile != "" {
		var err error
		cfg, err = config.LoadFile(*configFile)
		if err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	return cfg, cfg.Validate()
}

// applyEnvOverrides 应用环境变量覆盖配置
//
// 支持的环境变量：
//   - EVENTKIT_LOG_LEVEL: 日志级别
//   - EVENTKIT_LOG_FORMAT: 日志格式（text 或 json）
func applyEnvOverrides(cfg *config.Config) {
	if v := os.Getenv("EVENTKIT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("EVENTKIT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
