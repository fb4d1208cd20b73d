// Package event 实现发射器/事件（Emitter/Event）发布订阅原语
//
// # 核心概念
//
//   - Emitter：监听器集合的所有者，唯一能触发事件的一方
//   - Event：订阅契约，由 Emitter.Event() 产生
//   - Listener：一次订阅的记录（回调 + 移除钩子），Dispose 至多执行一次
//
// # 投递顺序
//
// 每个 Emitter 持有一个共享的投递队列。Fire 为当前每个监听器按注册顺序入队一个
// (listener, value) 对；若当前没有正在排空队列的调用，本次调用成为排空者，
// 依次弹出并回调直到队列为空。
//
// 回调中再次 Fire（重入）只入队、不嵌套排空，因此得到广度优先的顺序：
//
//	e := event.New[string]()
//	var a, b []string
//	e.Event().Subscribe(func(v string) {
//	    a = append(a, v)
//	    if v == "B" {
//	        e.Fire("D")
//	    }
//	})
//	e.Event().Subscribe(func(v string) { b = append(b, v) })
//	e.Fire("A"); e.Fire("B"); e.Fire("C")
//	// a = [A B D C], b = [A B D C]
//
// 同一 Emitter 的回调互不并发，按入队顺序全序执行；
// 其他 goroutine 在排空期间调用 Fire 同样只入队，由当前排空者投递。
//
// # 移除语义
//
// 已入队的投递对不受之后的取消订阅影响，仍会被投递；
// 取消订阅只影响之后的 Fire。
//
// # 故障处理
//
// 每次回调单独恢复 panic，包装为 *fault.PanicError 交给 WithFaultHandler 指定的
// 处理函数（默认为进程级 fault.Report），然后继续排空队列。
package event

import "github.com/dep2p/go-eventkit/internal/util/logger"

var log = logger.Logger("core/event")
