// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON 数据或文件加载配置
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Pump.MaxPending = 1024
//	cfg.Metrics.Enabled = true
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
//
//	// 从文件加载
//	cfg, err := config.LoadFile("eventkit.json")
package config

// Config 统一配置
//
// 包含以下子配置：
//   - Log: 日志级别与格式
//   - Event: 事件发射器默认参数
//   - Pump: 动作泵参数
//   - Metrics: 指标收集
type Config struct {
	// Log 日志配置
	Log LogConfig `json:"log"`

	// Event 事件配置
	Event EventConfig `json:"event"`

	// Pump 动作泵配置
	Pump PumpConfig `json:"pump"`

	// Metrics 指标配置
	Metrics MetricsConfig `json:"metrics"`
}

// NewConfig 创建默认配置
//
// 返回的配置使用所有组件的默认值，适用于大多数场景。
func NewConfig() *Config {
	return &Config{
		Log:     DefaultLogConfig(),
		Event:   DefaultEventConfig(),
		Pump:    DefaultPumpConfig(),
		Metrics: DefaultMetricsConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置是否有效，如果发现无效配置则返回错误。
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Event.Validate(); err != nil {
		return err
	}
	if err := c.Pump.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	return nil
}
