package cancellation

import (
	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/event"
	"github.com/dep2p/go-eventkit/internal/core/scheduler"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ============================================================================
// Kind
// ============================================================================

// Kind 令牌种类
type Kind uint8

const (
	// KindEmpty 永不取消的令牌（nil 也视为此类）
	KindEmpty Kind = iota
	// KindCancelled 始终已取消的令牌
	KindCancelled
	// KindMutable 可取消一次的 *MutableToken
	KindMutable
	// KindExternal 外部提供的令牌实现
	KindExternal
)

// String 返回种类名称
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCancelled:
		return "cancelled"
	case KindMutable:
		return "mutable"
	case KindExternal:
		return "external"
	default:
		return "unknown"
	}
}

// KindOf 返回令牌种类
func KindOf(tok pkgif.CancellationToken) Kind {
	switch tok.(type) {
	case nil, emptyToken:
		return KindEmpty
	case cancelledToken:
		return KindCancelled
	case *MutableToken:
		return KindMutable
	default:
		return KindExternal
	}
}

// ============================================================================
// 单例令牌
// ============================================================================

type emptyToken struct{}

func (emptyToken) IsCancellationRequested() bool { return false }

func (emptyToken) OnCancellationRequested() pkgif.Event[struct{}] {
	return event.None[struct{}]()
}

type cancelledToken struct{}

func (cancelledToken) IsCancellationRequested() bool { return true }

func (cancelledToken) OnCancellationRequested() pkgif.Event[struct{}] {
	return pkgif.EventFunc[struct{}](subscribeCancelled)
}

var (
	// Empty 永不取消的令牌
	Empty pkgif.CancellationToken = emptyToken{}

	// Cancelled 已取消的令牌
	Cancelled pkgif.CancellationToken = cancelledToken{}
)

// subscribeCancelled 已取消令牌的订阅：在之后的调度轮次回调一次
//
// 返回的 Disposable 在回调执行前释放可取消回调。
func subscribeCancelled(callback func(struct{}), opts ...pkgif.SubscribeOpt) pkgif.Disposable {
	if callback == nil {
		return disposable.Empty
	}
	d := scheduler.Defer("cancellation/cancelled", func() {
		callback(struct{}{})
	})
	if s := pkgif.ApplySubscribeOpts(opts); s.Collector != nil {
		s.Collector.Add(d)
	}
	return d
}
