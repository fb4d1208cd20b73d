package config

import (
	"errors"
	"time"
)

// PumpConfig 动作泵配置
type PumpConfig struct {
	// MaxPending 最大待执行动作数
	//
	// 超出时 Post 返回 ErrQueueFull，0 表示不限制。
	MaxPending int `json:"max_pending"`

	// DrainTimeout 停止时等待已排队动作完成的最长时间
	//
	// 0 表示停止时直接丢弃未开始的动作。
	DrainTimeout Duration `json:"drain_timeout"`

	// RateLimit 每秒最多开始执行的动作数，0 表示不限制
	RateLimit float64 `json:"rate_limit"`

	// Burst 限速时允许的突发动作数，RateLimit > 0 时至少为 1
	Burst int `json:"burst"`
}

// DefaultPumpConfig 返回默认动作泵配置
func DefaultPumpConfig() PumpConfig {
	return PumpConfig{
		MaxPending:   0,
		DrainTimeout: Duration(5 * time.Second),
		RateLimit:    0,
		Burst:        1,
	}
}

// Validate 验证动作泵配置
func (c PumpConfig) Validate() error {
	if c.MaxPending < 0 {
		return errors.New("max pending must be non-negative")
	}
	if c.DrainTimeout < 0 {
		return errors.New("drain timeout must be non-negative")
	}
	if c.RateLimit < 0 {
		return errors.New("rate limit must be non-negative")
	}
	if c.RateLimit > 0 && c.Burst < 1 {
		return errors.New("burst must be at least 1 when rate limit is set")
	}
	return nil
}
