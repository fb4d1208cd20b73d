// Package pump 实现顺序执行异步动作的动作泵
//
// 保证：
//   - 同一时刻最多一个动作在执行，严格按 Post 顺序（FIFO）
//   - 动作返回错误或 panic 时交给注入的 ErrorHandler，队列继续运行
//   - Dispose 丢弃尚未开始的动作并取消正在执行动作的 ctx
//   - 释放后 Post / WaitForAllActions 返回 ErrDisposed
//
// 使用示例：
//
//	p := pump.New(func(err error) {
//	    log.Warn("动作失败", "err", err)
//	}, pump.WithMaxPending(1024))
//	defer p.Dispose()
//
//	_ = p.Post(func(ctx context.Context) error {
//	    return flush(ctx)
//	})
//	if err := p.WaitForAllActions(ctx); err != nil {
//	    return err
//	}
//
// 工作 goroutine 按需启动：队列为空时退出，下一次 Post 时重新启动。
package pump

import "github.com/dep2p/go-eventkit/internal/util/logger"

var log = logger.Logger("core/pump")
