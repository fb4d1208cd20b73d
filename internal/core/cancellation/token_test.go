package cancellation

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/fault"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
	"github.com/dep2p/go-eventkit/internal/core/scheduler"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
	"github.com/dep2p/go-eventkit/tests/mocks"
	"github.com/dep2p/go-eventkit/tests/testutil"
)

// useMockClock 替换调度时钟，测试结束时恢复
func useMockClock(t *testing.T) *clock.Mock {
	t.Helper()
	mock := clock.NewMock()
	t.Cleanup(scheduler.SetClock(mock))
	return mock
}

// ============================================================================
// Kind
// ============================================================================

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindEmpty, KindOf(Empty))
	assert.Equal(t, KindEmpty, KindOf(nil))
	assert.Equal(t, KindCancelled, KindOf(Cancelled))
	assert.Equal(t, KindMutable, KindOf(NewMutableToken()))
	assert.Equal(t, KindExternal, KindOf(mocks.NewMockToken()))

	assert.Equal(t, "mutable", KindMutable.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

// ============================================================================
// Empty / Cancelled
// ============================================================================

func TestEmpty(t *testing.T) {
	mock := useMockClock(t)

	assert.False(t, Empty.IsCancellationRequested())
	assert.True(t, Empty == emptyToken{})

	called := false
	sub := Empty.OnCancellationRequested().Subscribe(func(struct{}) { called = true })
	assert.Equal(t, disposable.Empty, sub)

	mock.Add(time.Second)
	assert.False(t, called)
}

func TestCancelled_AsyncExactlyOnce(t *testing.T) {
	mock := useMockClock(t)

	assert.True(t, Cancelled.IsCancellationRequested())

	var calls atomic.Int32
	done := make(chan struct{})
	Cancelled.OnCancellationRequested().Subscribe(func(struct{}) {
		calls.Add(1)
		close(done)
	})

	// 订阅内不会同步回调
	assert.Equal(t, int32(0), calls.Load())

	mock.Add(time.Millisecond)
	testutil.WaitForSignal(t, done, time.Second, "已取消令牌的回调")

	mock.Add(time.Second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCancelled_DisposeBeforeRun(t *testing.T) {
	mock := useMockClock(t)

	var calls atomic.Int32
	sub := Cancelled.OnCancellationRequested().Subscribe(func(struct{}) { calls.Add(1) })
	sub.Dispose()

	mock.Add(time.Second)
	testutil.Never(t, 20*time.Millisecond, func() bool { return calls.Load() > 0 }, "释放后不应回调")
}

func TestCancelled_CallbackPanicReported(t *testing.T) {
	mock := useMockClock(t)

	reported := make(chan error, 1)
	defer fault.SetHandler(func(err error) { reported <- err })()

	Cancelled.OnCancellationRequested().Subscribe(func(struct{}) { panic("late") })
	mock.Add(time.Millisecond)

	select {
	case err := <-reported:
		var pe *fault.PanicError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "late", pe.Value)
	case <-time.After(time.Second):
		t.Fatal("故障未上报")
	}
}

// ============================================================================
// MutableToken
// ============================================================================

func TestMutableToken_CancelFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := metrics.NewMockReporter(ctrl)
	r.EXPECT().LogCancellation("mutable").Times(1)
	defer metrics.SetDefault(r)()

	tok := NewMutableToken()
	var c1, c2 int
	tok.OnCancellationRequested().Subscribe(func(struct{}) { c1++ })
	tok.OnCancellationRequested().Subscribe(func(struct{}) { c2++ })

	for i := 0; i < 5; i++ {
		tok.Cancel()
	}

	assert.True(t, tok.IsCancellationRequested())
	assert.Equal(t, 1, c1)
	assert.Equal(t, 1, c2)
}

func TestMutableToken_LazyEmitter(t *testing.T) {
	tok := NewMutableToken()
	assert.Equal(t, emitterUninitialized, tok.backingState())

	_ = tok.OnCancellationRequested()
	assert.Equal(t, emitterUninitialized, tok.backingState(), "读取事件不分配发射器")

	sub := tok.OnCancellationRequested().Subscribe(func(struct{}) {})
	assert.Equal(t, emitterLive, tok.backingState())
	emitter := tok.emitter
	sub.Dispose()

	tok.Cancel()
	assert.Equal(t, emitterReleased, tok.backingState())
	assert.Nil(t, tok.emitter)
	assert.True(t, emitter.IsDisposed())
}

func TestMutableToken_CancelWithoutSubscribers(t *testing.T) {
	tok := NewMutableToken()
	tok.Cancel()

	assert.True(t, tok.IsCancellationRequested())
	assert.Equal(t, emitterReleased, tok.backingState())
}

func TestMutableToken_LateSubscriber(t *testing.T) {
	mock := useMockClock(t)

	tok := NewMutableToken()
	tok.Cancel()

	var first, second atomic.Int32
	tok.OnCancellationRequested().Subscribe(func(struct{}) { first.Add(1) })
	assert.Equal(t, int32(0), first.Load(), "不能同步回调")

	mock.Add(time.Millisecond)
	testutil.Eventually(t, time.Second, func() bool { return first.Load() == 1 }, "迟到订阅者应收到回调")

	tok.OnCancellationRequested().Subscribe(func(struct{}) { second.Add(1) })
	mock.Add(time.Millisecond)
	testutil.Eventually(t, time.Second, func() bool { return second.Load() == 1 }, "第二个迟到订阅者应收到回调")

	mock.Add(time.Second)
	assert.Equal(t, int32(1), first.Load())
	assert.Equal(t, int32(1), second.Load())
	assert.Equal(t, emitterReleased, tok.backingState())
}

func TestMutableToken_DisposeKeepsFlag(t *testing.T) {
	tok := NewMutableToken()
	called := false
	tok.OnCancellationRequested().Subscribe(func(struct{}) { called = true })

	tok.Dispose()
	tok.Dispose()
	assert.False(t, tok.IsCancellationRequested())
	assert.Equal(t, emitterReleased, tok.backingState())

	// 释放后的订阅是空操作
	assert.Equal(t, disposable.Empty, tok.OnCancellationRequested().Subscribe(func(struct{}) {}))

	tok.Cancel()
	assert.False(t, called, "释放时已移除的订阅者不再收到通知")
	assert.True(t, tok.IsCancellationRequested())
}

func TestMutableToken_UnsubscribeBeforeCancel(t *testing.T) {
	tok := NewMutableToken()
	called := false
	sub := tok.OnCancellationRequested().Subscribe(func(struct{}) { called = true })
	sub.Dispose()

	tok.Cancel()
	assert.False(t, called)
}

func TestMutableToken_CollectInto(t *testing.T) {
	tok := NewMutableToken()
	store := disposable.NewStore()

	called := false
	tok.OnCancellationRequested().Subscribe(func(struct{}) { called = true }, pkgif.CollectInto(store))
	store.Dispose()

	tok.Cancel()
	assert.False(t, called)
}

// TestMutableToken_ConcurrentSubscribeCancel 测试并发订阅与取消时每个订阅者恰好收到一次
func TestMutableToken_ConcurrentSubscribeCancel(t *testing.T) {
	const n = 200
	tok := NewMutableToken()

	var calls atomic.Int32
	start := make(chan struct{})
	subscribed := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		go func() {
			<-start
			tok.OnCancellationRequested().Subscribe(func(struct{}) { calls.Add(1) })
			subscribed <- struct{}{}
		}()
	}

	close(start)
	tok.Cancel()
	for i := 0; i < n; i++ {
		<-subscribed
	}

	testutil.Eventually(t, 2*time.Second, func() bool { return calls.Load() == n }, "每个订阅者都应收到回调")
	testutil.Never(t, 50*time.Millisecond, func() bool { return calls.Load() > n }, "不应重复回调")
}
