package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-eventkit/config"
)

// Config 指标配置
type Config struct {
	// Enabled 是否启用 Prometheus 指标收集
	Enabled bool

	// Namespace 指标命名空间
	Namespace string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	d := config.DefaultMetricsConfig()
	return Config{
		Enabled:   d.Enabled,
		Namespace: d.Namespace,
	}
}

// ConfigFromUnified 从统一配置创建指标配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		Enabled:   cfg.Metrics.Enabled,
		Namespace: cfg.Metrics.Namespace,
	}
}

// Params Metrics 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config        `optional:"true"`
	Registerer prometheus.Registerer `optional:"true"`
}

// Module 是 metrics 的 Fx 模块
//
// 提供 Reporter，并在应用运行期间将其设为进程级默认 Reporter。
var Module = fx.Module("metrics",
	fx.Provide(NewReporterFromParams),
	fx.Invoke(registerLifecycle),
)

// NewReporterFromParams 从参数创建 Reporter
//
// 未启用时返回 Nop；未注入 Registerer 时使用独立的 Registry。
func NewReporterFromParams(p Params) (Reporter, error) {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return Nop, nil
	}
	reg := p.Registerer
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	return NewPrometheusReporter(reg, cfg.Namespace)
}

func registerLifecycle(lc fx.Lifecycle, r Reporter) {
	var restore func()
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			restore = SetDefault(r)
			log.Debug("指标 Reporter 已安装", "reporter", reporterName(r))
			return nil
		},
		OnStop: func(context.Context) error {
			if restore != nil {
				restore()
			}
			return nil
		},
	})
}

func reporterName(r Reporter) string {
	switch r.(type) {
	case *PrometheusReporter:
		return "prometheus"
	case nopReporter:
		return "nop"
	default:
		return "custom"
	}
}
