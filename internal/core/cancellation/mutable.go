package cancellation

import (
	"sync"
	"sync/atomic"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/event"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// emitterState 内部发射器的生命周期
//
//	emitterUninitialized --首次订阅--> emitterLive --取消/释放--> emitterReleased
//	emitterUninitialized --取消/释放--> emitterReleased
type emitterState uint8

const (
	emitterUninitialized emitterState = iota
	emitterLive
	emitterReleased
)

func (s emitterState) String() string {
	switch s {
	case emitterUninitialized:
		return "uninitialized"
	case emitterLive:
		return "live"
	case emitterReleased:
		return "released"
	default:
		return "unknown"
	}
}

// MutableToken 可取消一次的令牌
//
// 内部发射器在首次订阅时才创建，取消或释放时销毁。
// 订阅与取消由令牌锁线性化：订阅要么进入发射器并被投递，要么观察到已取消状态。
type MutableToken struct {
	mu        sync.Mutex
	cancelled atomic.Bool
	state     emitterState
	emitter   *event.Emitter[struct{}]
}

var _ pkgif.CancellationToken = (*MutableToken)(nil)

// NewMutableToken 创建未取消的令牌
func NewMutableToken() *MutableToken {
	return &MutableToken{}
}

// IsCancellationRequested 是否已取消
func (t *MutableToken) IsCancellationRequested() bool {
	return t.cancelled.Load()
}

// OnCancellationRequested 取消事件
//
// 取消后订阅的行为与 Cancelled 令牌一致；
// 未取消但已释放的令牌订阅返回空 Disposable。
func (t *MutableToken) OnCancellationRequested() pkgif.Event[struct{}] {
	return pkgif.EventFunc[struct{}](t.subscribe)
}

func (t *MutableToken) subscribe(callback func(struct{}), opts ...pkgif.SubscribeOpt) pkgif.Disposable {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancelled.Load() {
		return subscribeCancelled(callback, opts...)
	}

	switch t.state {
	case emitterReleased:
		return disposable.Empty
	case emitterUninitialized:
		t.emitter = event.New[struct{}](event.WithName("cancellation/token"))
		t.state = emitterLive
	}
	return t.emitter.Event().Subscribe(callback, opts...)
}

// Cancel 请求取消
//
// 首次调用设置标志、向当前订阅者投递一次并释放内部发射器；之后的调用无效果。
func (t *MutableToken) Cancel() {
	t.mu.Lock()
	if t.cancelled.Load() {
		t.mu.Unlock()
		return
	}
	t.cancelled.Store(true)
	em := t.release()
	t.mu.Unlock()

	metrics.Default().LogCancellation(KindMutable.String())
	if em != nil {
		log.Debug("令牌已取消", "listeners", em.ListenerCount())
		em.Fire(struct{}{})
		em.Dispose()
	}
}

// Dispose 释放内部发射器，不改变取消状态
func (t *MutableToken) Dispose() {
	t.mu.Lock()
	em := t.release()
	t.mu.Unlock()

	if em != nil {
		em.Dispose()
	}
}

// release 转换到 emitterReleased 并交出发射器，调用方持有锁
func (t *MutableToken) release() *event.Emitter[struct{}] {
	em := t.emitter
	t.emitter = nil
	t.state = emitterReleased
	return em
}

// backingState 返回内部发射器状态
func (t *MutableToken) backingState() emitterState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}
