package piskvork

import "sync"

// commandQueue is an unbounded FIFO of raw input lines with single
// producer / single consumer semantics. After Close the consumer still
// drains every queued line; Pop only reports done once the queue is both
// closed and empty.
type commandQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	closed bool
}

func newCommandQueue() *commandQueue {
	var q = &commandQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *commandQueue) Push(line string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, line)
	q.cond.Signal()
}

func (q *commandQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Signal()
}

// Pop blocks until a line is available or the queue is closed and drained.
func (q *commandQueue) Pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for len(q.items) == 0 && !q.closed {
		q.cond.Wait()
	}
	if len(q.items) == 0 {
		return "", false
	}
	var line = q.items[0]
	q.items = q.items[1:]
	return line, true
}
