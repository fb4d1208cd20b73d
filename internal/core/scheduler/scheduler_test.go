package scheduler

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-eventkit/internal/core/fault"
)

func TestDefer_NeverSynchronous(t *testing.T) {
	mock := clock.NewMock()
	defer SetClock(mock)()

	done := make(chan struct{})
	Defer("test", func() { close(done) })

	select {
	case <-done:
		t.Fatal("回调不能在 Defer 内同步执行")
	default:
	}

	mock.Add(time.Millisecond)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("回调未执行")
	}
}

func TestDefer_RealClock(t *testing.T) {
	done := make(chan struct{})
	Defer("test", func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("回调未执行")
	}
}

func TestDefer_DisposeCancels(t *testing.T) {
	mock := clock.NewMock()
	defer SetClock(mock)()

	called := make(chan struct{}, 1)
	d := Defer("test", func() { called <- struct{}{} })
	d.Dispose()
	d.Dispose()

	mock.Add(time.Second)

	select {
	case <-called:
		t.Fatal("已取消的回调不应执行")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDefer_PanicIsReported(t *testing.T) {
	reported := make(chan error, 1)
	restore := fault.SetHandler(func(err error) { reported <- err })
	defer restore()

	Defer("deferred", func() { panic("late failure") })

	select {
	case err := <-reported:
		var pe *fault.PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "deferred", pe.Source)
	case <-time.After(time.Second):
		t.Fatal("故障未上报")
	}
}

func TestSetClock_NilUsesRealClock(t *testing.T) {
	restore := SetClock(nil)
	defer restore()
	assert.NotNil(t, Clock())
}
