// Package mocks 提供统一的测试 Mock 实现
//
// # 令牌 Mock
//
//   - MockToken: 模拟外部实现的 interfaces.CancellationToken，
//     通过 SetCancelled 手动取消，记录订阅次数
//
// # 收集器 Mock
//
//   - MockCollector: 模拟 interfaces.Collector，记录登记的 Disposable
//
// # 设计原则
//
// 1. 函数式注入: 通过 XxxFunc 字段注入自定义行为
// 2. 调用记录: 记录调用次数，便于验证测试行为
//
// # 使用示例
//
//	import "github.com/dep2p/go-eventkit/tests/mocks"
//
//	func TestParentCancel(t *testing.T) {
//	    parent := mocks.NewMockToken()
//	    src := cancellation.NewSourceWithParent(parent)
//	    parent.SetCancelled()
//	    assert.True(t, src.Token().IsCancellationRequested())
//	}
//
// Reporter 的 gomock Mock 位于 internal/core/metrics（MockReporter）。
package mocks
