// Package fault 提供进程级的故障上报通道
//
// 用户回调（事件监听器、延迟回调、Disposable）中的 panic 不会被静默吞掉，
// 也不会中断与之无关的投递：它们被恢复为 *PanicError，交给当前的 Handler。
//
// 默认 Handler 以 Error 级别记录日志；可通过 SetHandler 替换。
package fault

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/dep2p/go-eventkit/internal/util/logger"
)

var log = logger.Logger("core/fault")

// Handler 故障处理函数
type Handler func(err error)

var current atomic.Pointer[Handler]

// defaultHandler 记录故障日志
func defaultHandler(err error) {
	var pe *PanicError
	if errors.As(err, &pe) {
		log.Error("回调发生故障", "source", pe.Source, "err", err, "stack", string(pe.Stack))
		return
	}
	log.Error("回调发生故障", "err", err)
}

// SetHandler 替换进程级故障处理函数，返回恢复之前处理函数的函数
//
// h 为 nil 时恢复默认处理函数。
func SetHandler(h Handler) (restore func()) {
	var next *Handler
	if h != nil {
		next = &h
	}
	prev := current.Swap(next)
	return func() {
		current.Store(prev)
	}
}

// Report 将故障交给当前的进程级处理函数
func Report(err error) {
	if err == nil {
		return
	}
	h := defaultHandler
	if p := current.Load(); p != nil {
		h = *p
	}
	Guard(h)(err)
}

// Guard 包装处理函数，处理函数自身的 panic 只记录日志，不再向外传播
func Guard(h Handler) Handler {
	if h == nil {
		return defaultHandler
	}
	return func(err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("故障处理函数发生 panic", "err", err, "panic", r)
			}
		}()
		h(err)
	}
}

// ============================================================================
// PanicError
// ============================================================================

// PanicError 由回调 panic 恢复而来的错误
type PanicError struct {
	// Source 发生故障的组件（例如 emitter 名称）
	Source string

	// Value recover() 返回的原始值
	Value any

	// Stack panic 发生时的调用栈
	Stack []byte
}

// Error 实现 error 接口
func (e *PanicError) Error() string {
	return fmt.Sprintf("%s: callback panicked: %v", e.Source, e.Value)
}

// Unwrap 原始值是 error 时返回它
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Recover 将 recover() 的返回值包装为 *PanicError
//
// 必须在 defer 函数中调用，以便捕获正确的调用栈。r 为 nil 时返回 nil。
func Recover(source string, r any) *PanicError {
	if r == nil {
		return nil
	}
	return &PanicError{
		Source: source,
		Value:  r,
		Stack:  debug.Stack(),
	}
}

// Run 执行 fn，将 panic 恢复后上报给 h（h 为 nil 时使用进程级处理函数）
func Run(source string, h Handler, fn func()) {
	defer func() {
		if pe := Recover(source, recover()); pe != nil {
			if h != nil {
				Guard(h)(pe)
				return
			}
			Report(pe)
		}
	}()
	fn()
}
