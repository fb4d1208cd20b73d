package event

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// 并发测试
// ============================================================================

// TestEmitter_ConcurrentFire 测试多 goroutine 触发时全部投递且回调互不并发
func TestEmitter_ConcurrentFire(t *testing.T) {
	e := New[int]()
	defer e.Dispose()

	const (
		goroutines = 16
		perG       = 200
		listeners  = 3
	)

	var delivered, inflight, overlap atomic.Int64
	for i := 0; i < listeners; i++ {
		e.Event().Subscribe(func(int) {
			if inflight.Add(1) > 1 {
				overlap.Add(1)
			}
			delivered.Add(1)
			inflight.Add(-1)
		})
	}

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				e.Fire(g*perG + i)
			}
		}(g)
	}
	wg.Wait()

	// 所有 Fire 返回时，排空者已投递完所有入队的投递对
	assert.Equal(t, int64(goroutines*perG*listeners), delivered.Load())
	assert.Equal(t, int64(0), overlap.Load())
	assert.Equal(t, 0, e.Pending())
}

// TestEmitter_ConcurrentSubscribeDispose 测试并发订阅与取消订阅
func TestEmitter_ConcurrentSubscribeDispose(t *testing.T) {
	e := New[int]()
	defer e.Dispose()

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				sub := e.Event().Subscribe(func(int) {})
				e.Fire(i)
				sub.Dispose()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, e.ListenerCount())
}
