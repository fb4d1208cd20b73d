// Package disposable 提供 Disposable 契约的基础实现
//
//   - Empty: 什么都不做的 Disposable 单例
//   - Func:  把函数包装为只执行一次的 Disposable
//   - Store: 收集多个 Disposable，统一释放
package disposable

import (
	"sync"

	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ============================================================================
// Empty
// ============================================================================

type emptyDisposable struct{}

func (emptyDisposable) Dispose() {}

// Empty 释放时什么都不做的 Disposable
var Empty pkgif.Disposable = emptyDisposable{}

// ============================================================================
// Func
// ============================================================================

// funcDisposable 只执行一次的函数
type funcDisposable struct {
	once sync.Once
	fn   func()
}

// Dispose 执行函数（至多一次）
func (d *funcDisposable) Dispose() {
	d.once.Do(func() {
		if d.fn != nil {
			d.fn()
		}
	})
}

// Func 把 fn 包装为 Disposable，多次 Dispose 只执行一次 fn
func Func(fn func()) pkgif.Disposable {
	return &funcDisposable{fn: fn}
}

// DisposeAll 依次释放，忽略 nil
func DisposeAll(ds ...pkgif.Disposable) {
	for _, d := range ds {
		if d != nil {
			d.Dispose()
		}
	}
}
