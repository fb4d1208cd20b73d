package cancellation

import (
	"sync"

	"github.com/dep2p/go-eventkit/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Source 令牌的所有者
//
// 令牌值在以下时刻决定（之后不再改变种类）：
//   - 首次 Token()：创建 *MutableToken
//   - 读取前 Cancel()：保存 Cancelled 单例
//   - 读取前 Dispose()：保存 Empty 单例
type Source struct {
	mu        sync.Mutex
	token     pkgif.CancellationToken
	parentSub pkgif.Disposable
	disposed  bool
}

var _ pkgif.CancellationTokenSource = (*Source)(nil)

// NewSource 创建没有父令牌的 Source
func NewSource() *Source {
	return &Source{}
}

// NewSourceWithParent 创建 Source，并在 parent 取消时取消自身
//
// 对 parent 的订阅在 Dispose 时移除。parent 为 nil 时等同于 NewSource。
func NewSourceWithParent(parent pkgif.CancellationToken) *Source {
	s := &Source{}
	if parent == nil {
		return s
	}
	sub := parent.OnCancellationRequested().Subscribe(func(struct{}) {
		s.Cancel()
	})

	s.mu.Lock()
	s.parentSub = sub
	s.mu.Unlock()
	return s
}

// Token 返回本源的令牌
func (s *Source) Token() pkgif.CancellationToken {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		s.token = NewMutableToken()
	}
	return s.token
}

// Cancel 请求取消
//
// 令牌尚未读取时直接保存 Cancelled 单例。Source 已释放时无效果。
func (s *Source) Cancel() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}

	switch tok := s.token.(type) {
	case nil:
		s.token = Cancelled
		s.mu.Unlock()
		metrics.Default().LogCancellation(KindCancelled.String())
	case *MutableToken:
		s.mu.Unlock()
		tok.Cancel()
	default:
		s.mu.Unlock()
	}
}

// Dispose 释放本源，不取消令牌
func (s *Source) Dispose() {
	s.DisposeWith(false)
}

// DisposeWith 释放本源
//
// cancelFirst 为 true 时先执行 Cancel。移除对父令牌的订阅；
// 令牌尚未读取时保存 Empty 单例；已保存的 Cancelled 不会被降级。
func (s *Source) DisposeWith(cancelFirst bool) {
	if cancelFirst {
		s.Cancel()
	}

	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true

	sub := s.parentSub
	s.parentSub = nil
	if s.token == nil {
		s.token = Empty
	}
	mt, _ := s.token.(*MutableToken)
	s.mu.Unlock()

	if sub != nil {
		sub.Dispose()
	}
	if mt != nil {
		mt.Dispose()
	}
}

// IsDisposed 是否已释放
func (s *Source) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}
