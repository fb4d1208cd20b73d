package metrics

import "sync/atomic"

// 动作结果标签
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeDiscarded = "discarded"
)

// Reporter 记录事件投递、取消与动作执行指标
type Reporter interface {
	// LogFire 记录一次触发及入队的投递数
	LogFire(source string, deliveries int)

	// LogFault 记录一次监听器故障
	LogFault(source string)

	// LogCancellation 记录一次令牌取消（kind 为令牌类别）
	LogCancellation(kind string)

	// LogAction 记录一次动作结束（outcome 见 Outcome* 常量）
	LogAction(outcome string)
}

// ============================================================================
// 默认 Reporter
// ============================================================================

type nopReporter struct{}

func (nopReporter) LogFire(string, int)     {}
func (nopReporter) LogFault(string)         {}
func (nopReporter) LogCancellation(string)  {}
func (nopReporter) LogAction(string)        {}

// Nop 不记录任何指标的 Reporter
var Nop Reporter = nopReporter{}

type reporterHolder struct{ r Reporter }

var defaultReporter atomic.Pointer[reporterHolder]

// Default 返回进程级默认 Reporter（未设置时为 Nop）
func Default() Reporter {
	if h := defaultReporter.Load(); h != nil {
		return h.r
	}
	return Nop
}

// SetDefault 设置进程级默认 Reporter，返回恢复函数
//
// r 为 nil 时恢复为 Nop。
func SetDefault(r Reporter) (restore func()) {
	var next *reporterHolder
	if r != nil {
		next = &reporterHolder{r: r}
	}
	prev := defaultReporter.Swap(next)
	return func() {
		defaultReporter.Store(prev)
	}
}

// 确保实现 Reporter 接口
var (
	_ Reporter = nopReporter{}
	_ Reporter = (*PrometheusReporter)(nil)
	_ Reporter = (*MockReporter)(nil)
)
