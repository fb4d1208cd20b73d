package mocks

import (
	"sync"

	"github.com/dep2p/go-eventkit/pkg/interfaces"
)

// MockCollector 模拟 Collector 实现
type MockCollector struct {
	mu    sync.Mutex
	items []interfaces.Disposable

	// 可覆盖的方法
	AddFunc func(d interfaces.Disposable)

	// 调用记录
	AddCalls int
}

var _ interfaces.Collector = (*MockCollector)(nil)

// NewMockCollector 创建 MockCollector
func NewMockCollector() *MockCollector {
	return &MockCollector{}
}

// Add 实现 Collector
func (m *MockCollector) Add(d interfaces.Disposable) {
	m.mu.Lock()
	m.AddCalls++
	m.items = append(m.items, d)
	fn := m.AddFunc
	m.mu.Unlock()

	if fn != nil {
		fn(d)
	}
}

// Items 返回已登记的 Disposable 副本
func (m *MockCollector) Items() []interfaces.Disposable {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]interfaces.Disposable, len(m.items))
	copy(out, m.items)
	return out
}

// DisposeAll 释放所有已登记的 Disposable
func (m *MockCollector) DisposeAll() {
	for _, d := range m.Items() {
		d.Dispose()
	}
}
