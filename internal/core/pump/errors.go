package pump

import "errors"

var (
	// ErrDisposed 动作泵已释放
	ErrDisposed = errors.New("the action pump has been disposed")

	// ErrQueueFull 待执行动作数达到上限
	ErrQueueFull = errors.New("action pump queue is full")

	// ErrNilAction 动作为 nil
	ErrNilAction = errors.New("nil action")
)
