package event

import "github.com/lixenwraith/reddy-catch/parameter"

// Queue is a fixed-size ring buffer for game events
// Single producer (simulation core) and single consumer (shell), both on the loop goroutine
//
// Overflow: oldest events overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an event, dropping the oldest unread event on overflow
func (q *Queue) Push(ev GameEvent) {
	q.events[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := q.head; i < q.tail; i++ {
		result = append(result, q.events[i&parameter.EventBufferMask])
		q.events[i&parameter.EventBufferMask] = GameEvent{}
	}
	q.head = q.tail
	return result
}

// Len returns the number of unread events
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Clear drops all unread events
func (q *Queue) Clear() {
	q.events = [parameter.EventQueueSize]GameEvent{}
	q.head = 0
	q.tail = 0
}
