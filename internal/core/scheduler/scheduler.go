// Package scheduler 把回调推迟到之后的调度轮次执行
//
// 已取消令牌的事件要求"订阅时绝不同步回调"，
// 因此回调通过时钟的 AfterFunc(0) 在独立 goroutine 中执行。
// 时钟可替换为 clock.Mock，使测试能精确控制回调时机。
package scheduler

import (
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/fault"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

var (
	mu  sync.RWMutex
	clk clock.Clock = clock.New()
)

// Clock 返回当前使用的时钟
func Clock() clock.Clock {
	mu.RLock()
	defer mu.RUnlock()
	return clk
}

// SetClock 替换时钟，返回恢复原时钟的函数
//
// c 为 nil 时使用真实时钟。
func SetClock(c clock.Clock) (restore func()) {
	if c == nil {
		c = clock.New()
	}
	mu.Lock()
	prev := clk
	clk = c
	mu.Unlock()
	return func() {
		mu.Lock()
		clk = prev
		mu.Unlock()
	}
}

// Defer 在之后的调度轮次执行 fn，至多一次
//
// 返回的 Disposable 在 fn 尚未执行时取消它。
// fn 中的 panic 被恢复并交给 fault.Report。
func Defer(source string, fn func()) pkgif.Disposable {
	t := Clock().AfterFunc(0, func() {
		fault.Run(source, nil, fn)
	})
	return disposable.Func(func() {
		t.Stop()
	})
}
