package event

// delivery 一个待投递的 (listener, value) 对
type delivery[T any] struct {
	listener *Listener[T]
	value    T
}

// deliveryQueue 先进先出的投递队列
//
// 以切片加读指针实现；读空后复用底层数组。非并发安全，由发射器加锁。
type deliveryQueue[T any] struct {
	items []delivery[T]
	head  int
}

func (q *deliveryQueue[T]) push(d delivery[T]) {
	q.items = append(q.items, d)
}

func (q *deliveryQueue[T]) pop() (delivery[T], bool) {
	if q.head >= len(q.items) {
		return delivery[T]{}, false
	}
	d := q.items[q.head]
	q.items[q.head] = delivery[T]{}
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return d, true
}

func (q *deliveryQueue[T]) size() int {
	return len(q.items) - q.head
}

// reset 丢弃所有未投递的元素
func (q *deliveryQueue[T]) reset() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}
