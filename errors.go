package eventkit

import (
	"errors"

	"github.com/dep2p/go-eventkit/internal/core/cancellation"
	"github.com/dep2p/go-eventkit/internal/core/pump"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 动作泵错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrDisposed 动作泵已释放
	ErrDisposed = pump.ErrDisposed

	// ErrQueueFull 动作泵待执行动作数达到上限
	ErrQueueFull = pump.ErrQueueFull

	// ErrNilAction 动作为 nil
	ErrNilAction = pump.ErrNilAction

	// ────────────────────────────────────────────────────────────────────────
	// 取消错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrCancellationRequested 令牌取消导致 context 取消时的原因
	ErrCancellationRequested = cancellation.ErrCancellationRequested

	// ────────────────────────────────────────────────────────────────────────
	// 应用生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrAlreadyStarted 应用已启动
	ErrAlreadyStarted = errors.New("app already started")

	// ErrAppClosed 应用已关闭
	ErrAppClosed = errors.New("app closed")
)
