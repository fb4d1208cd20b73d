// Package linkedlist 提供泛型侵入式双向链表
//
// 与 container/list 的区别：
//   - 泛型，无需类型断言
//   - Clear 会解除所有元素的归属，之后对旧元素调用 Remove 是安全的空操作
package linkedlist

// Element 链表元素
type Element[T any] struct {
	Value T

	prev, next *Element[T]
	list       *List[T]
}

// List 双向链表
//
// 非并发安全，由调用方加锁。
type List[T any] struct {
	head, tail *Element[T]
	size       int
}

// New 创建空链表
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len 返回元素数量
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty 链表是否为空
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushBack 追加到尾部，返回可用于 O(1) 删除的元素句柄
func (l *List[T]) PushBack(v T) *Element[T] {
	e := &Element[T]{Value: v, list: l, prev: l.tail}
	if l.tail != nil {
		l.tail.next = e
	} else {
		l.head = e
	}
	l.tail = e
	l.size++
	return e
}

// Remove 删除元素
//
// 元素不属于本链表（已删除或已被 Clear）时返回 false。
func (l *List[T]) Remove(e *Element[T]) bool {
	if e == nil || e.list != l {
		return false
	}
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next, e.list = nil, nil, nil
	l.size--
	return true
}

// Each 按插入顺序遍历，fn 返回 false 时停止
//
// 遍历期间不得修改链表。
func (l *List[T]) Each(fn func(T) bool) {
	for e := l.head; e != nil; e = e.next {
		if !fn(e.Value) {
			return
		}
	}
}

// Values 按插入顺序返回所有值的快照
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.Value)
	}
	return out
}

// Clear 清空链表并解除所有元素的归属
func (l *List[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.prev, e.next, e.list = nil, nil, nil
		e = next
	}
	l.head, l.tail = nil, nil
	l.size = 0
}
