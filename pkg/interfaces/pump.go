// Package interfaces 定义 go-eventkit 公共接口
//
// 本文件定义顺序动作队列契约。
package interfaces

import "context"

// Action 由动作队列顺序执行的异步工作项
//
// ctx 在队列被释放时取消。
type Action func(ctx context.Context) error

// ActionPump 定义顺序动作队列接口
//
// 保证：同一时刻最多一个动作在执行；严格 FIFO；
// 动作失败交给注入的错误处理器，队列继续运行；
// 释放后丢弃未开始的动作，后续 Post/WaitForAllActions 返回已释放错误。
type ActionPump interface {
	Disposable

	// Post 入队一个动作，空闲时立即开始执行
	Post(action Action) error

	// WaitForAllActions 等待当前已入队的动作全部执行完毕
	WaitForAllActions(ctx context.Context) error
}
