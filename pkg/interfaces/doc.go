// Package interfaces 定义 go-eventkit 的公共接口
//
// 本包只包含契约，不包含实现（一个接口文件 = 一个实现目录）：
//   - disposable.go     - 资源释放契约（internal/core/disposable）
//   - event.go          - 事件订阅契约（internal/core/event）
//   - cancellation.go   - 取消令牌契约（internal/core/cancellation）
//   - pump.go           - 顺序动作队列契约（internal/core/pump）
//
// # 依赖方向
//
//	root facade → internal/core/* → pkg/interfaces
//
// 禁止反向依赖。
package interfaces
