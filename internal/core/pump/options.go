package pump

import (
	"golang.org/x/time/rate"

	"github.com/dep2p/go-eventkit/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Option 动作泵选项
type Option func(*settings)

type settings struct {
	name       string
	maxPending int
	reporter   metrics.Reporter
	parent     pkgif.CancellationToken
	limiter    *rate.Limiter
}

func applyOptions(opts []Option) settings {
	s := settings{name: "pump"}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}

// WithName 设置名称，用于日志与故障来源
func WithName(name string) Option {
	return func(s *settings) {
		if name != "" {
			s.name = name
		}
	}
}

// WithMaxPending 限制待执行动作数，n <= 0 表示不限制
func WithMaxPending(n int) Option {
	return func(s *settings) {
		s.maxPending = n
	}
}

// WithReporter 设置指标 Reporter，未设置时使用 metrics.Default()
func WithReporter(r metrics.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// WithParentToken 父令牌取消时，传给动作的 ctx 随之取消
func WithParentToken(tok pkgif.CancellationToken) Option {
	return func(s *settings) {
		s.parent = tok
	}
}

// WithRateLimit 限制每秒开始执行的动作数
//
// 等待期间动作泵被释放时，该动作被丢弃。limit <= 0 表示不限制。
func WithRateLimit(limit float64, burst int) Option {
	return func(s *settings) {
		if limit <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = rate.NewLimiter(rate.Limit(limit), max(burst, 1))
	}
}
