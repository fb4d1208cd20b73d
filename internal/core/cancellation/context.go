package cancellation

import (
	"context"
	"errors"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ErrCancellationRequested 令牌取消导致 context 取消时的原因
var ErrCancellationRequested = errors.New("cancellation requested")

// WithToken 返回在 tok 取消时取消的 context
//
// 由令牌触发的取消以 ErrCancellationRequested 作为 context.Cause。
// 调用返回的 CancelFunc 会移除对令牌的订阅。
func WithToken(parent context.Context, tok pkgif.CancellationToken) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	stop := func() { cancel(context.Canceled) }

	switch KindOf(tok) {
	case KindEmpty:
		return ctx, stop
	case KindCancelled:
		cancel(ErrCancellationRequested)
		return ctx, stop
	}

	if tok.IsCancellationRequested() {
		cancel(ErrCancellationRequested)
		return ctx, stop
	}
	sub := tok.OnCancellationRequested().Subscribe(func(struct{}) {
		cancel(ErrCancellationRequested)
	})
	return ctx, func() {
		sub.Dispose()
		stop()
	}
}

// FromContext 返回在 ctx 结束时取消的令牌
//
// 永不结束的 ctx（如 context.Background()）返回 Empty；已结束的 ctx 返回 Cancelled。
// 返回的 Disposable 解除桥接并释放令牌。
func FromContext(ctx context.Context) (pkgif.CancellationToken, pkgif.Disposable) {
	if ctx.Done() == nil {
		return Empty, disposable.Empty
	}
	if ctx.Err() != nil {
		return Cancelled, disposable.Empty
	}

	src := NewSource()
	tok := src.Token()
	stop := context.AfterFunc(ctx, src.Cancel)
	return tok, disposable.Func(func() {
		stop()
		src.Dispose()
	})
}
