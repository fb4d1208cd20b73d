// Package interfaces 定义 go-eventkit 公共接口
//
// 本文件定义 Disposable 契约，提供确定性的资源释放。
package interfaces

// Disposable 定义可释放资源的接口
//
// Dispose 必须是幂等的：第二次调用没有任何可观察效果。
type Disposable interface {
	// Dispose 释放资源（监听器、订阅、内部发射器）
	Dispose()
}

// Collector 收集订阅产生的 Disposable，便于统一释放
type Collector interface {
	// Add 登记一个 Disposable
	Add(d Disposable)
}
