// Package testutil 提供测试辅助工具
package testutil

import (
	"testing"
	"time"
)

// pollInterval Eventually 与 Never 的轮询间隔
const pollInterval = 5 * time.Millisecond

// WaitForCondition 每隔 interval 检查一次 condition，直到返回 true 或超过 timeout
//
// 调用时先检查一次；超时返回 false。
func WaitForCondition(t *testing.T, timeout, interval time.Duration, condition func() bool) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		if condition() {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(min(interval, time.Until(deadline)))
	}
}

// WaitForConditionOrFail 同 WaitForCondition，超时以 msg 终止测试
func WaitForConditionOrFail(t *testing.T, timeout, interval time.Duration, condition func() bool, msg string) {
	t.Helper()
	if !WaitForCondition(t, timeout, interval, condition) {
		t.Fatalf("等待超时: %s", msg)
	}
}

// Eventually condition 须在 timeout 内变为 true
//
//	testutil.Eventually(t, time.Second, child.Token().IsCancellationRequested, "子令牌应被取消")
func Eventually(t *testing.T, timeout time.Duration, condition func() bool, msg string) {
	t.Helper()
	WaitForConditionOrFail(t, timeout, pollInterval, condition, msg)
}

// Never condition 在整个 window 内须保持 false
func Never(t *testing.T, window time.Duration, condition func() bool, msg string) {
	t.Helper()
	if WaitForCondition(t, window, pollInterval, condition) {
		t.Fatalf("条件不应满足: %s", msg)
	}
}

// WaitForSignal ch 须在 timeout 内关闭或送达一个值
func WaitForSignal[T any](t *testing.T, ch <-chan T, timeout time.Duration, msg string) {
	t.Helper()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
	case <-timer.C:
		t.Fatalf("等待信号超时: %s", msg)
	}
}
