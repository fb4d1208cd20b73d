package config

import "errors"

// EventConfig 事件发射器配置
type EventConfig struct {
	// LeakThreshold 监听器泄漏告警阈值
	//
	// 单个发射器的监听器数达到该值时输出一次告警，0 表示关闭。
	LeakThreshold int `json:"leak_threshold"`
}

// DefaultEventConfig 返回默认事件配置
func DefaultEventConfig() EventConfig {
	return EventConfig{
		LeakThreshold: 0,
	}
}

// Validate 验证事件配置
func (c EventConfig) Validate() error {
	if c.LeakThreshold < 0 {
		return errors.New("leak threshold must be non-negative")
	}
	return nil
}
