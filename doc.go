// Package eventkit 提供进程内的协调原语
//
// go-eventkit 面向较大的异步子系统，提供：
//
//   - Emitter/Event：发布订阅，重入触发按广度优先的确定顺序投递
//   - Disposable：确定性的资源释放契约
//   - CancellationToken/Source：层级化取消，取消事件每个令牌至多触发一次
//   - ActionPump：顺序执行异步动作的队列
//
// # 快速开始
//
//	import "github.com/dep2p/go-eventkit"
//
//	// 事件
//	changed := eventkit.NewEmitter[string](eventkit.WithEmitterName("config"))
//	sub := changed.Event().Subscribe(func(key string) {
//	    fmt.Println("changed:", key)
//	})
//	changed.Fire("timeout")
//	sub.Dispose()
//
//	// 取消
//	parent := eventkit.NewSource()
//	child := eventkit.NewSourceWithParent(parent.Token())
//	child.Token().OnCancellationRequested().Subscribe(func(struct{}) {
//	    fmt.Println("cancelled")
//	})
//	parent.Cancel()
//
//	// 动作泵
//	p := eventkit.NewPump(func(err error) { log.Println(err) })
//	_ = p.Post(func(ctx context.Context) error { return work(ctx) })
//	_ = p.WaitForAllActions(ctx)
//	p.Dispose()
//
// # 应用装配
//
// New 基于 go.uber.org/fx 组装根 Source、动作泵与指标 Reporter，
// Close 时依次排空动作泵、取消根令牌：
//
//	app, err := eventkit.New(config.NewConfig())
//	if err != nil {
//	    return err
//	}
//	if err := app.Start(ctx); err != nil {
//	    return err
//	}
//	defer app.Close()
//
// # 文件组织
//
//	eventkit/
//	├── doc.go        # 包文档
//	├── eventkit.go   # 版本信息、类型别名、构造函数
//	├── errors.go     # 错误定义
//	└── fx.go         # Fx 模块与 App
//
// # 内部结构
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  API Layer        eventkit.New / NewEmitter / NewSource     │
//	├─────────────────────────────────────────────────────────────┤
//	│  Core Layer       event · cancellation · pump               │
//	├─────────────────────────────────────────────────────────────┤
//	│  Support Layer    disposable · scheduler · fault · metrics  │
//	├─────────────────────────────────────────────────────────────┤
//	│  Util Layer       linkedlist · logger                       │
//	└─────────────────────────────────────────────────────────────┘
package eventkit
