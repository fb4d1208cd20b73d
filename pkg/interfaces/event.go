// Package interfaces 定义 go-eventkit 公共接口
//
// 本文件定义 Event 订阅契约。
package interfaces

// Event 定义事件订阅接口
//
// Event 只负责产生订阅；触发由持有 Emitter 的一方完成。
// 订阅期间不会同步回调 callback。
//
// 回调的接收者通过方法值绑定（例如 src.Cancel），不需要额外的调用上下文参数。
type Event[T any] interface {
	// Subscribe 订阅事件，返回用于取消订阅的 Disposable
	Subscribe(callback func(T), opts ...SubscribeOpt) Disposable
}

// EventFunc 函数适配器，使普通函数满足 Event 接口
type EventFunc[T any] func(callback func(T), opts ...SubscribeOpt) Disposable

// Subscribe 实现 Event 接口
func (f EventFunc[T]) Subscribe(callback func(T), opts ...SubscribeOpt) Disposable {
	return f(callback, opts...)
}

// SubscribeOpt 订阅选项函数类型
type SubscribeOpt func(*SubscribeSettings)

// SubscribeSettings 订阅设置（导出以供实现使用）
type SubscribeSettings struct {
	// Collector 非空时，订阅返回的 Disposable 会被登记到其中
	Collector Collector
}

// CollectInto 将订阅登记到指定的 Collector
func CollectInto(c Collector) SubscribeOpt {
	return func(s *SubscribeSettings) {
		s.Collector = c
	}
}

// ApplySubscribeOpts 应用订阅选项并返回设置
func ApplySubscribeOpts(opts []SubscribeOpt) SubscribeSettings {
	var s SubscribeSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
