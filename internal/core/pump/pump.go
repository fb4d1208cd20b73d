package pump

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dep2p/go-eventkit/internal/core/cancellation"
	"github.com/dep2p/go-eventkit/internal/core/fault"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ErrorHandler 接收动作失败的错误
//
// 动作 panic 时收到 *fault.PanicError。
type ErrorHandler func(err error)

// pendingAction 队列中的一个动作
type pendingAction struct {
	id  uuid.UUID
	run pkgif.Action

	// marker 为 WaitForAllActions 内部插入的标记，不计入指标与上限
	marker bool
}

// Pump 顺序动作泵
type Pump struct {
	mu sync.Mutex

	opts    settings
	handler fault.Handler

	queue    []*pendingAction
	pending  int
	running  bool
	disposed bool

	// disposedCh 在 Dispose 时关闭
	disposedCh chan struct{}

	// src 拥有传给动作的 ctx 的取消
	src    *cancellation.Source
	ctx    context.Context
	stopFn context.CancelFunc
}

var _ pkgif.ActionPump = (*Pump)(nil)

// New 创建动作泵
//
// handler 为 nil 时失败交给进程级 fault.Report。
// handler 自身 panic 时只记录日志。
func New(handler ErrorHandler, opts ...Option) *Pump {
	s := applyOptions(opts)

	var h fault.Handler
	if handler != nil {
		h = fault.Guard(fault.Handler(handler))
	} else {
		h = fault.Report
	}

	src := cancellation.NewSourceWithParent(s.parent)
	ctx, stop := cancellation.WithToken(context.Background(), src.Token())

	return &Pump{
		opts:       s,
		handler:    h,
		disposedCh: make(chan struct{}),
		src:        src,
		ctx:        ctx,
		stopFn:     stop,
	}
}

// Post 入队一个动作，空闲时立即开始执行
func (p *Pump) Post(action pkgif.Action) error {
	if action == nil {
		return ErrNilAction
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.disposed {
		return ErrDisposed
	}
	if limit := p.opts.maxPending; limit > 0 && p.pending >= limit {
		return fmt.Errorf("%w: capacity %d reached", ErrQueueFull, limit)
	}

	a := &pendingAction{id: uuid.New(), run: action}
	p.pending++
	p.enqueueLocked(a)

	log.Debug("动作已入队",
		"pump", p.opts.name,
		"action", a.id,
		"pending", p.pending)
	return nil
}

// WaitForAllActions 等待调用时已入队的动作全部执行完毕
//
// 等待期间动作泵被释放时返回 ErrDisposed；ctx 结束时返回 ctx.Err()。
func (p *Pump) WaitForAllActions(ctx context.Context) error {
	done := make(chan struct{})

	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return ErrDisposed
	}
	p.enqueueLocked(&pendingAction{
		id:     uuid.New(),
		marker: true,
		run: func(context.Context) error {
			close(done)
			return nil
		},
	})
	disposedCh := p.disposedCh
	p.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-disposedCh:
		return ErrDisposed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending 返回尚未开始执行的动作数
func (p *Pump) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

// IsDisposed 是否已释放
func (p *Pump) IsDisposed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.disposed
}

// Dispose 释放动作泵
//
// 丢弃尚未开始的动作，取消正在执行动作的 ctx。重复调用无效果。
func (p *Pump) Dispose() {
	p.mu.Lock()
	if p.disposed {
		p.mu.Unlock()
		return
	}
	p.disposed = true
	discarded := p.pending
	p.queue = nil
	p.pending = 0
	close(p.disposedCh)
	p.mu.Unlock()

	p.src.DisposeWith(true)
	p.stopFn()

	for i := 0; i < discarded; i++ {
		p.reporter().LogAction(metrics.OutcomeDiscarded)
	}
	log.Debug("动作泵已释放", "pump", p.opts.name, "discarded", discarded)
}

// ============================================================================
// 执行
// ============================================================================

// enqueueLocked 入队并在空闲时启动工作 goroutine，调用方持有锁
func (p *Pump) enqueueLocked(a *pendingAction) {
	p.queue = append(p.queue, a)
	if !p.running {
		p.running = true
		go p.run()
	}
}

// run 工作 goroutine：依次执行直到队列为空或已释放
func (p *Pump) run() {
	for {
		p.mu.Lock()
		if p.disposed || len(p.queue) == 0 {
			p.running = false
			p.mu.Unlock()
			return
		}
		a := p.queue[0]
		p.queue[0] = nil
		p.queue = p.queue[1:]
		if !a.marker {
			p.pending--
		}
		p.mu.Unlock()

		p.execute(a)
	}
}

func (p *Pump) execute(a *pendingAction) {
	if !a.marker && p.opts.limiter != nil {
		if err := p.opts.limiter.Wait(p.ctx); err != nil {
			p.reporter().LogAction(metrics.OutcomeDiscarded)
			log.Debug("限速等待中止，丢弃动作", "pump", p.opts.name, "action", a.id, "err", err)
			return
		}
	}

	err := p.invoke(a)
	if a.marker {
		return
	}
	if err != nil {
		p.reporter().LogAction(metrics.OutcomeFailed)
		log.Debug("动作失败", "pump", p.opts.name, "action", a.id, "err", err)
		p.handler(err)
		return
	}
	p.reporter().LogAction(metrics.OutcomeSucceeded)
}

// invoke 执行动作，panic 被恢复为 *fault.PanicError
func (p *Pump) invoke(a *pendingAction) (err error) {
	defer func() {
		if pe := fault.Recover(p.opts.name, recover()); pe != nil {
			err = pe
		}
	}()
	return a.run(p.ctx)
}

func (p *Pump) reporter() metrics.Reporter {
	if p.opts.reporter != nil {
		return p.opts.reporter
	}
	return metrics.Default()
}
