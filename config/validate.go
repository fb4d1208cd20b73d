package config

import "errors"

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，提供更明确的语义。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 可修复的问题：
//   - 负数的待执行上限 -> 不限制
//   - 负数的排空超时 -> 使用默认值
//   - 负数的泄漏阈值 -> 关闭
//   - 启用指标但命名空间为空 -> 使用默认命名空间
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	if c.Pump.MaxPending < 0 {
		c.Pump.MaxPending = 0
	}
	if c.Pump.RateLimit < 0 {
		c.Pump.RateLimit = 0
	}
	if c.Pump.Burst < 1 {
		c.Pump.Burst = 1
	}
	if c.Pump.DrainTimeout < 0 {
		c.Pump.DrainTimeout = DefaultPumpConfig().DrainTimeout
	}
	if c.Event.LeakThreshold < 0 {
		c.Event.LeakThreshold = 0
	}
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsConfig().Namespace
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
