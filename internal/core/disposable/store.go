package disposable

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/dep2p/go-eventkit/internal/core/fault"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// Store 收集 Disposable 并统一释放
//
// Store 实现 interfaces.Collector，可直接作为订阅的收集器：
//
//	store := disposable.NewStore()
//	emitter.Event().Subscribe(onChange, pkgif.CollectInto(store))
//	defer store.Dispose()
type Store struct {
	mu       sync.Mutex
	items    []pkgif.Disposable
	disposed bool
}

var (
	_ pkgif.Disposable = (*Store)(nil)
	_ pkgif.Collector  = (*Store)(nil)
)

// NewStore 创建空的 Store
func NewStore() *Store {
	return &Store{}
}

// Add 登记一个 Disposable
//
// Store 已释放时，d 会被立即释放。
func (s *Store) Add(d pkgif.Disposable) {
	if d == nil {
		return
	}
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		d.Dispose()
		return
	}
	s.items = append(s.items, d)
	s.mu.Unlock()
}

// Len 返回尚未释放的条目数
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// IsDisposed 是否已释放
func (s *Store) IsDisposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Dispose 按登记顺序释放所有条目
//
// 单个条目的 panic 不会阻止其余条目释放；所有故障合并后上报给 fault.Report。
func (s *Store) Dispose() {
	s.mu.Lock()
	if s.disposed {
		s.mu.Unlock()
		return
	}
	s.disposed = true
	items := s.items
	s.items = nil
	s.mu.Unlock()

	var errs error
	for _, d := range items {
		errs = multierr.Append(errs, disposeOne(d))
	}
	if errs != nil {
		fault.Report(errs)
	}
}

// Clear 释放所有条目，但 Store 仍可继续使用
func (s *Store) Clear() {
	s.mu.Lock()
	items := s.items
	s.items = nil
	s.mu.Unlock()

	var errs error
	for _, d := range items {
		errs = multierr.Append(errs, disposeOne(d))
	}
	if errs != nil {
		fault.Report(errs)
	}
}

func disposeOne(d pkgif.Disposable) (err error) {
	defer func() {
		if pe := fault.Recover("disposable/store", recover()); pe != nil {
			err = pe
		}
	}()
	d.Dispose()
	return nil
}
