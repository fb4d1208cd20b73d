package event

import (
	"github.com/dep2p/go-eventkit/internal/core/fault"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
)

const defaultName = "event"

// Option 发射器选项
type Option func(*settings)

type settings struct {
	name          string
	faultHandler  fault.Handler
	reporter      metrics.Reporter
	onFirst       func()
	onLast        func()
	leakThreshold int
}

func applyOptions(opts []Option) settings {
	s := settings{name: defaultName}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithName 设置发射器名称，用于日志、故障来源与指标标签
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithFaultHandler 设置监听器故障的处理函数
//
// 未设置时故障交给进程级 fault.Report。
func WithFaultHandler(h fault.Handler) Option {
	return func(s *settings) {
		s.faultHandler = h
	}
}

// WithReporter 设置指标 Reporter，未设置时使用 metrics.Default()
func WithReporter(r metrics.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// WithOnFirstListener 监听器数从 0 变为 1 时调用 fn
//
// 首末钩子按监听器数变化的顺序串行调用。钩子内不得订阅或取消订阅同一发射器。
func WithOnFirstListener(fn func()) Option {
	return func(s *settings) {
		s.onFirst = fn
	}
}

// WithOnLastListener 监听器数变为 0 时调用 fn（包括释放发射器时仍有监听器的情况）
func WithOnLastListener(fn func()) Option {
	return func(s *settings) {
		s.onLast = fn
	}
}

// WithLeakThreshold 监听器数达到 n 时输出一次告警日志，n <= 0 表示关闭
func WithLeakThreshold(n int) Option {
	return func(s *settings) {
		s.leakThreshold = n
	}
}
