package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ============================================================================
// 默认 Reporter 测试
// ============================================================================

func TestDefault_IsNop(t *testing.T) {
	assert.Equal(t, Nop, Default())

	// Nop 的所有方法都可安全调用
	Nop.LogFire("x", 3)
	Nop.LogFault("x")
	Nop.LogCancellation("mutable")
	Nop.LogAction(OutcomeSucceeded)
}

func TestSetDefault_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockReporter(ctrl)
	mock.EXPECT().LogAction(OutcomeFailed).Times(1)

	restore := SetDefault(mock)
	Default().LogAction(OutcomeFailed)
	restore()

	assert.Equal(t, Nop, Default())
}

func TestSetDefault_Nil(t *testing.T) {
	restore := SetDefault(nil)
	defer restore()
	assert.Equal(t, Nop, Default())
}

// ============================================================================
// PrometheusReporter 测试
// ============================================================================

func TestPrometheusReporter_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewPrometheusReporter(reg, "test")
	require.NoError(t, err)

	r.LogFire("emitter-a", 3)
	r.LogFire("emitter-a", 2)
	r.LogFault("emitter-a")
	r.LogCancellation("mutable")
	r.LogCancellation("mutable")
	r.LogAction(OutcomeSucceeded)
	r.LogAction(OutcomeDiscarded)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.fires.WithLabelValues("emitter-a")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.deliveries.WithLabelValues("emitter-a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.faults.WithLabelValues("emitter-a")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.cancellations.WithLabelValues("mutable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues(OutcomeSucceeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues(OutcomeDiscarded)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.actions.WithLabelValues(OutcomeFailed)))
}

func TestPrometheusReporter_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusReporter(reg, "dup")
	require.NoError(t, err)

	_, err = NewPrometheusReporter(reg, "dup")
	assert.Error(t, err)
}
