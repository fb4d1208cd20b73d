package eventkit

import (
	"context"

	"github.com/dep2p/go-eventkit/internal/core/cancellation"
	"github.com/dep2p/go-eventkit/internal/core/disposable"
	"github.com/dep2p/go-eventkit/internal/core/event"
	"github.com/dep2p/go-eventkit/internal/core/fault"
	"github.com/dep2p/go-eventkit/internal/core/pump"
	pkgif "github.com/dep2p/go-eventkit/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-eventkit " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Disposable 可释放资源
	Disposable = pkgif.Disposable

	// Collector 收集订阅产生的 Disposable
	Collector = pkgif.Collector

	// SubscribeOpt 订阅选项
	SubscribeOpt = pkgif.SubscribeOpt

	// CancellationToken 只读取消状态
	CancellationToken = pkgif.CancellationToken

	// CancellationTokenSource 令牌的所有者
	CancellationTokenSource = pkgif.CancellationTokenSource

	// ActionPump 顺序动作队列
	ActionPump = pkgif.ActionPump

	// Action 动作泵执行的工作项
	Action = pkgif.Action

	// Source 令牌所有者的实现
	Source = cancellation.Source

	// MutableToken 可取消一次的令牌
	MutableToken = cancellation.MutableToken

	// TokenKind 令牌种类
	TokenKind = cancellation.Kind

	// Store 收集 Disposable 并统一释放
	Store = disposable.Store

	// Pump 动作泵的实现
	Pump = pump.Pump

	// ErrorHandler 接收动作泵中动作失败的错误
	ErrorHandler = pump.ErrorHandler

	// EmitterOption 发射器选项
	EmitterOption = event.Option

	// PumpOption 动作泵选项
	PumpOption = pump.Option

	// PanicError 回调 panic 恢复而来的错误
	PanicError = fault.PanicError
)

// 令牌种类
const (
	KindEmpty     = cancellation.KindEmpty
	KindCancelled = cancellation.KindCancelled
	KindMutable   = cancellation.KindMutable
	KindExternal  = cancellation.KindExternal
)

var (
	// EmptyToken 永不取消的令牌
	EmptyToken = cancellation.Empty

	// CancelledToken 已取消的令牌
	CancelledToken = cancellation.Cancelled

	// NoopDisposable 释放时什么都不做的 Disposable
	NoopDisposable = disposable.Empty
)

// ════════════════════════════════════════════════════════════════════════════
//                              事件
// ════════════════════════════════════════════════════════════════════════════

// NewEmitter 创建发射器
func NewEmitter[T any](opts ...EmitterOption) *event.Emitter[T] {
	return event.New[T](opts...)
}

// NoneEvent 返回永不触发的事件
func NoneEvent[T any]() pkgif.Event[T] {
	return event.None[T]()
}

// WithEmitterName 设置发射器名称
func WithEmitterName(name string) EmitterOption {
	return event.WithName(name)
}

// WithFaultHandler 设置发射器监听器故障的处理函数
func WithFaultHandler(h func(error)) EmitterOption {
	return event.WithFaultHandler(h)
}

// WithLeakThreshold 监听器数达到 n 时输出一次告警
func WithLeakThreshold(n int) EmitterOption {
	return event.WithLeakThreshold(n)
}

// WithOnFirstListener 监听器数从 0 变为 1 时调用 fn
func WithOnFirstListener(fn func()) EmitterOption {
	return event.WithOnFirstListener(fn)
}

// WithOnLastListener 监听器数变为 0 时调用 fn
func WithOnLastListener(fn func()) EmitterOption {
	return event.WithOnLastListener(fn)
}

// CollectInto 将订阅登记到收集器
func CollectInto(c Collector) SubscribeOpt {
	return pkgif.CollectInto(c)
}

// ════════════════════════════════════════════════════════════════════════════
//                              Disposable
// ════════════════════════════════════════════════════════════════════════════

// NewStore 创建 Store
func NewStore() *Store {
	return disposable.NewStore()
}

// ToDisposable 把 fn 包装为只执行一次的 Disposable
func ToDisposable(fn func()) Disposable {
	return disposable.Func(fn)
}

// ════════════════════════════════════════════════════════════════════════════
//                              取消
// ════════════════════════════════════════════════════════════════════════════

// NewSource 创建 Source
func NewSource() *Source {
	return cancellation.NewSource()
}

// NewSourceWithParent 创建在 parent 取消时取消的 Source
func NewSourceWithParent(parent CancellationToken) *Source {
	return cancellation.NewSourceWithParent(parent)
}

// KindOf 返回令牌种类
func KindOf(tok CancellationToken) TokenKind {
	return cancellation.KindOf(tok)
}

// WithToken 返回在 tok 取消时取消的 context
func WithToken(parent context.Context, tok CancellationToken) (context.Context, context.CancelFunc) {
	return cancellation.WithToken(parent, tok)
}

// FromContext 返回在 ctx 结束时取消的令牌
func FromContext(ctx context.Context) (CancellationToken, Disposable) {
	return cancellation.FromContext(ctx)
}

// ════════════════════════════════════════════════════════════════════════════
//                              动作泵
// ════════════════════════════════════════════════════════════════════════════

// NewPump 创建动作泵
func NewPump(handler ErrorHandler, opts ...PumpOption) *Pump {
	return pump.New(handler, opts...)
}

// WithMaxPending 限制动作泵待执行动作数
func WithMaxPending(n int) PumpOption {
	return pump.WithMaxPending(n)
}

// WithRateLimit 限制动作泵每秒开始执行的动作数
func WithRateLimit(limit float64, burst int) PumpOption {
	return pump.WithRateLimit(limit, burst)
}

// WithParentToken 父令牌取消时，动作的 ctx 随之取消
func WithParentToken(tok CancellationToken) PumpOption {
	return pump.WithParentToken(tok)
}

// ════════════════════════════════════════════════════════════════════════════
//                              故障
// ════════════════════════════════════════════════════════════════════════════

// SetFaultHandler 替换进程级故障处理函数，返回恢复函数
//
// 未设置 WithFaultHandler 的发射器、延迟回调与未注入处理函数的动作泵
// 都把故障交给该函数。
func SetFaultHandler(h func(error)) (restore func()) {
	return fault.SetHandler(h)
}
