package event

import (
	"sync/atomic"

	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Listener 一次订阅的记录
//
// Dispose 从所属发射器移除该订阅，至多执行一次；
// 发射器释放时会把所有监听器标记为已移除。
type Listener[T any] struct {
	callback func(T)
	remove   func()
	removed  atomic.Bool
}

var _ pkgif.Disposable = (*Listener[int])(nil)

// Dispose 取消订阅
func (l *Listener[T]) Dispose() {
	if !l.removed.CompareAndSwap(false, true) {
		return
	}
	if l.remove != nil {
		l.remove()
	}
}

// Removed 是否已取消订阅
func (l *Listener[T]) Removed() bool {
	return l.removed.Load()
}

// markRemoved 由发射器在释放时调用，不执行移除钩子
func (l *Listener[T]) markRemoved() {
	l.removed.Store(true)
}
