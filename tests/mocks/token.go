package mocks

import (
	"sync"

	"github.com/dep2p/go-eventkit/internal/core/event"
	"github.com/dep2p/go-eventkit/pkg/interfaces"
)

// MockToken 模拟外部提供的 CancellationToken 实现
//
// 由测试通过 SetCancelled 手动触发取消。取消后的订阅不会收到回调，
// 用于验证组件不依赖内置令牌的"迟到订阅"语义。
type MockToken struct {
	mu        sync.Mutex
	cancelled bool
	emitter   *event.Emitter[struct{}]

	// 可覆盖的方法
	IsCancellationRequestedFunc func() bool

	// 调用记录
	SubscribeCalls int
}

var _ interfaces.CancellationToken = (*MockToken)(nil)

// NewMockToken 创建未取消的 MockToken
func NewMockToken() *MockToken {
	return &MockToken{
		emitter: event.New[struct{}](event.WithName("mocks/token")),
	}
}

// IsCancellationRequested 实现 CancellationToken
func (m *MockToken) IsCancellationRequested() bool {
	if m.IsCancellationRequestedFunc != nil {
		return m.IsCancellationRequestedFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled
}

// OnCancellationRequested 实现 CancellationToken
func (m *MockToken) OnCancellationRequested() interfaces.Event[struct{}] {
	return interfaces.EventFunc[struct{}](func(cb func(struct{}), opts ...interfaces.SubscribeOpt) interfaces.Disposable {
		m.mu.Lock()
		m.SubscribeCalls++
		m.mu.Unlock()
		return m.emitter.Event().Subscribe(cb, opts...)
	})
}

// SetCancelled 标记为已取消并同步通知当前订阅者，重复调用无效果
func (m *MockToken) SetCancelled() {
	m.mu.Lock()
	if m.cancelled {
		m.mu.Unlock()
		return
	}
	m.cancelled = true
	m.mu.Unlock()
	m.emitter.Fire(struct{}{})
}

// ListenerCount 返回当前订阅数
func (m *MockToken) ListenerCount() int {
	return m.emitter.ListenerCount()
}
