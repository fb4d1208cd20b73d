package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-eventkit/config"
)

// ============================================================================
// Fx 模块测试
// ============================================================================

// TestModule_DefaultIsNop 测试未启用时提供 Nop
func TestModule_DefaultIsNop(t *testing.T) {
	var reporter Reporter

	app := fxtest.New(t,
		Module,
		fx.Populate(&reporter),
	)
	defer app.RequireStart().RequireStop()

	assert.Equal(t, Nop, reporter)
}

// TestModule_Prometheus 测试启用后安装 Prometheus Reporter
func TestModule_Prometheus(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Metrics.Enabled = true
	reg := prometheus.NewRegistry()

	var reporter Reporter
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Provide(func() prometheus.Registerer { return reg }),
		Module,
		fx.Populate(&reporter),
	)

	app.RequireStart()
	_, ok := reporter.(*PrometheusReporter)
	assert.True(t, ok)
	assert.Same(t, reporter, Default())

	app.RequireStop()
	assert.Equal(t, Nop, Default(), "停止后恢复默认 Reporter")
}

func TestConfigFromUnified(t *testing.T) {
	assert.Equal(t, DefaultConfig(), ConfigFromUnified(nil))

	cfg := config.NewConfig()
	cfg.Metrics.Namespace = "svc"
	assert.Equal(t, "svc", ConfigFromUnified(cfg).Namespace)
}
