// Package interfaces 定义 go-eventkit 公共接口
//
// 本文件定义取消令牌契约。
package interfaces

// CancellationToken 定义只读的取消状态
//
// OnCancellationRequested 返回的事件对每个令牌实例最多触发一次。
// 在令牌已取消之后订阅的监听器仍会收到恰好一次回调，
// 但回调总是在之后的调度轮次中异步执行，绝不会在 Subscribe 内同步执行。
type CancellationToken interface {
	// IsCancellationRequested 是否已请求取消
	IsCancellationRequested() bool

	// OnCancellationRequested 取消事件
	OnCancellationRequested() Event[struct{}]
}

// CancellationTokenSource 定义令牌的所有者/控制者
type CancellationTokenSource interface {
	Disposable

	// Token 返回（必要时惰性创建）本源拥有的令牌
	Token() CancellationToken

	// Cancel 请求取消，重复调用无效果
	Cancel()

	// DisposeWith 释放本源，cancelFirst 为 true 时先执行 Cancel
	DisposeWith(cancelFirst bool)
}
