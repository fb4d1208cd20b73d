package event

import (
	"sync"

	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/fault"
	"github.com/dep2p/go-eventkit/internal/core/metrics"
	"github.com/dep2p/go-eventkit/internal/util/linkedlist"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ============================================================================
// Emitter 实现
// ============================================================================

// Emitter 事件发射器
//
// 监听器集合与投递队列都在首次使用时创建。
// 所有方法并发安全；回调执行期间不持有锁。
type Emitter[T any] struct {
	mu sync.Mutex

	// hookMu 串行化 0→1 与 1→0 的监听器数变化及对应钩子，仅在配置了钩子时使用
	hookMu sync.Mutex

	opts settings

	// listeners 按注册顺序排列的监听器
	listeners *linkedlist.List[*Listener[T]]

	// queue 所有 Fire 共享的投递队列
	queue *deliveryQueue[T]

	// delivering 是否有调用正在排空队列
	delivering bool
	disposed   bool
	leakWarned bool
}

var _ pkgif.Disposable = (*Emitter[int])(nil)

// New 创建发射器
func New[T any](opts ...Option) *Emitter[T] {
	return &Emitter[T]{
		opts: applyOptions(opts),
	}
}

// Name 返回发射器名称
func (e *Emitter[T]) Name() string {
	return e.opts.name
}

// Event 返回订阅契约
func (e *Emitter[T]) Event() pkgif.Event[T] {
	return pkgif.EventFunc[T](e.subscribe)
}

// subscribe 注册监听器
//
// 发射器已释放时返回 disposable.Empty，回调永远不会被调用。
func (e *Emitter[T]) subscribe(callback func(T), opts ...pkgif.SubscribeOpt) pkgif.Disposable {
	s := pkgif.ApplySubscribeOpts(opts)

	l := e.addListener(callback)
	if l == nil {
		return disposable.Empty
	}
	// 登记在 hookMu 之外进行：已释放的收集器会立即 Dispose
	if s.Collector != nil {
		s.Collector.Add(l)
	}
	return l
}

// addListener 追加监听器并在监听器数变为 1 时调用 onFirst，已释放时返回 nil
func (e *Emitter[T]) addListener(callback func(T)) *Listener[T] {
	unlockHooks := e.lockHooks()
	defer unlockHooks()

	e.mu.Lock()
	if e.disposed || callback == nil {
		e.mu.Unlock()
		return nil
	}
	if e.listeners == nil {
		e.listeners = linkedlist.New[*Listener[T]]()
	}

	l := &Listener[T]{callback: callback}
	elem := e.listeners.PushBack(l)
	l.remove = func() {
		e.removeListener(elem)
	}

	count := e.listeners.Len()
	warnLeak := false
	if th := e.opts.leakThreshold; th > 0 && count >= th && !e.leakWarned {
		e.leakWarned = true
		warnLeak = true
	}
	e.mu.Unlock()

	if warnLeak {
		log.Warn("监听器数量达到阈值，可能存在泄漏",
			"emitter", e.opts.name,
			"listeners", count,
			"threshold", e.opts.leakThreshold)
	}
	if count == 1 && e.opts.onFirst != nil {
		fault.Run(e.opts.name, e.opts.faultHandler, e.opts.onFirst)
	}
	return l
}

// removeListener 由 Listener.Dispose 调用
func (e *Emitter[T]) removeListener(elem *linkedlist.Element[*Listener[T]]) {
	unlockHooks := e.lockHooks()
	defer unlockHooks()

	e.mu.Lock()
	removed := e.listeners != nil && e.listeners.Remove(elem)
	last := removed && e.listeners.IsEmpty()
	e.mu.Unlock()

	if last && e.opts.onLast != nil {
		fault.Run(e.opts.name, e.opts.faultHandler, e.opts.onLast)
	}
}

// Fire 向当前所有监听器投递 v
//
// 没有监听器或已释放时为空操作。若已有调用在排空队列（回调中重入，
// 或其他 goroutine 正在投递），本次调用入队后立即返回，由排空者投递。
func (e *Emitter[T]) Fire(v T) {
	e.mu.Lock()
	if e.disposed || e.listeners == nil || e.listeners.IsEmpty() {
		e.mu.Unlock()
		return
	}
	if e.queue == nil {
		e.queue = &deliveryQueue[T]{}
	}

	n := 0
	e.listeners.Each(func(l *Listener[T]) bool {
		e.queue.push(delivery[T]{listener: l, value: v})
		n++
		return true
	})
	e.mu.Unlock()

	e.logFire(n)

	e.mu.Lock()
	if e.delivering {
		e.mu.Unlock()
		return
	}
	e.delivering = true
	e.mu.Unlock()

	e.drain()
}

// logFire 记录指标；Reporter 的 panic 按故障上报，不影响投递
func (e *Emitter[T]) logFire(n int) {
	defer func() {
		if pe := fault.Recover(e.opts.name, recover()); pe != nil {
			e.reportFault(pe)
		}
	}()
	e.reporter().LogFire(e.opts.name, n)
}

// drain 依次弹出并投递，直到队列为空
//
// 回调以 runtime.Goexit 等方式中止排空时，同样释放排空权，
// 剩余的投递对由下一次 Fire 继续投递。
func (e *Emitter[T]) drain() {
	finished := false
	defer func() {
		if !finished {
			e.mu.Lock()
			e.delivering = false
			e.mu.Unlock()
		}
	}()

	for {
		e.mu.Lock()
		d, ok := e.queue.pop()
		if !ok {
			e.delivering = false
			finished = true
			e.mu.Unlock()
			return
		}
		e.mu.Unlock()

		e.deliver(d)
	}
}

// deliver 调用单个监听器，恢复并上报其 panic
func (e *Emitter[T]) deliver(d delivery[T]) {
	defer func() {
		if pe := fault.Recover(e.opts.name, recover()); pe != nil {
			e.logFault()
			e.reportFault(pe)
		}
	}()
	d.listener.callback(d.value)
}

func (e *Emitter[T]) logFault() {
	defer func() {
		if pe := fault.Recover(e.opts.name, recover()); pe != nil {
			fault.Report(pe)
		}
	}()
	e.reporter().LogFault(e.opts.name)
}

func (e *Emitter[T]) reportFault(err error) {
	if e.opts.faultHandler != nil {
		fault.Guard(e.opts.faultHandler)(err)
		return
	}
	fault.Report(err)
}

// lockHooks 配置了首末监听器钩子时持有 hookMu，返回解锁函数
func (e *Emitter[T]) lockHooks() func() {
	if e.opts.onFirst == nil && e.opts.onLast == nil {
		return func() {}
	}
	e.hookMu.Lock()
	return e.hookMu.Unlock
}

func (e *Emitter[T]) reporter() metrics.Reporter {
	if e.opts.reporter != nil {
		return e.opts.reporter
	}
	return metrics.Default()
}

// ============================================================================
// 查询
// ============================================================================

// HasListeners 是否存在监听器
func (e *Emitter[T]) HasListeners() bool {
	return e.ListenerCount() > 0
}

// ListenerCount 返回当前监听器数量
func (e *Emitter[T]) ListenerCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.listeners == nil {
		return 0
	}
	return e.listeners.Len()
}

// Pending 返回尚未投递的投递对数量
func (e *Emitter[T]) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.queue == nil {
		return 0
	}
	return e.queue.size()
}

// IsDisposed 是否已释放
func (e *Emitter[T]) IsDisposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}

// ============================================================================
// 生命周期
// ============================================================================

// Dispose 释放发射器
//
// 移除所有监听器并丢弃尚未投递的投递对。重复调用无效果。
func (e *Emitter[T]) Dispose() {
	unlockHooks := e.lockHooks()
	defer unlockHooks()

	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true

	live := 0
	if e.listeners != nil {
		live = e.listeners.Len()
		e.listeners.Each(func(l *Listener[T]) bool {
			l.markRemoved()
			return true
		})
		e.listeners.Clear()
	}
	if e.queue != nil {
		e.queue.reset()
	}
	e.mu.Unlock()

	if live > 0 {
		log.Debug("发射器释放时仍有监听器", "emitter", e.opts.name, "listeners", live)
		if e.opts.onLast != nil {
			fault.Run(e.opts.name, e.opts.faultHandler, e.opts.onLast)
		}
	}
}

// ============================================================================
// 空事件
// ============================================================================

// None 返回永不触发的事件，订阅返回 disposable.Empty
func None[T any]() pkgif.Event[T] {
	return pkgif.EventFunc[T](func(func(T), ...pkgif.SubscribeOpt) pkgif.Disposable {
		return disposable.Empty
	})
}
