// Package cancellation 实现层级化的取消令牌
//
// # 令牌种类
//
//   - Empty：永不取消，订阅返回空 Disposable，回调永不执行
//   - Cancelled：始终已取消，订阅后在之后的调度轮次异步回调恰好一次
//   - *MutableToken：初始未取消，至多转换为已取消一次
//   - 外部实现：任何满足 interfaces.CancellationToken 的类型
//
// KindOf 通过类型判断区分以上四类。Empty 与 Cancelled 是进程级单例，可直接用 == 比较。
//
// # Source
//
// Source 拥有且只拥有一个令牌，令牌在首次读取时才决定：
//
//	src := cancellation.NewSource()
//	tok := src.Token()               // 创建 MutableToken
//	tok.OnCancellationRequested().Subscribe(func(struct{}) { ... })
//	src.Cancel()                     // 回调执行一次
//	src.Dispose()
//
// 若在读取令牌前取消，Source 直接保存 Cancelled 单例；
// 若在读取令牌前释放，Source 保存 Empty 单例。两种情况都不会分配 MutableToken。
//
// # 父子关系
//
//	parent := cancellation.NewSource()
//	child := cancellation.NewSourceWithParent(parent.Token())
//	parent.Cancel() // child.Token().IsCancellationRequested() == true
//
// 子 Source 释放时移除对父令牌的订阅，之后父令牌的取消不再影响它。
//
// # 与 context 互通
//
// WithToken 把令牌桥接为 context.Context，FromContext 反向桥接。
package cancellation

import "github.com/dep2p/go-eventkit/internal/util/logger"

var log = logger.Logger("core/cancellation")
