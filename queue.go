package ringq

import (
	"fmt"
	"strings"

	"github.com/tychoish/fun/erc"
)

// Queue is a double-ended queue of strings, stored as a circular
// doubly linked list around a sentinel element. The zero value is an
// empty queue ready to use; New is provided for symmetry with Free.
//
// The queue owns its elements until they are removed. Callers are
// responsible for their own concurrency control.
type Queue struct {
	head *Element
}

// New allocates an empty queue.
func New() *Queue { q := &Queue{}; q.root(); return q }

func (q *Queue) root() *Element {
	if q.head == nil {
		q.head = newRoot()
	}
	return q.head
}

// Free releases every element in the queue and resets it to its zero
// value. Free is a no-op on a nil queue.
func (q *Queue) Free() {
	if q == nil || q.head == nil {
		return
	}

	for e := q.head.next; e != q.head; {
		next := e.next
		e.unlink()
		e.Release()
		e = next
	}

	q.head = nil
}

// InsertHead adds a copy of the value to the front of the queue,
// returning false only when the queue is nil.
func (q *Queue) InsertHead(value string) bool {
	if q == nil {
		log.Debugf("insert head on nil queue")
		return false
	}

	q.root().insertAfter(newElement(strings.Clone(value)))
	return true
}

// InsertTail adds a copy of the value to the back of the queue,
// returning false only when the queue is nil.
func (q *Queue) InsertTail(value string) bool {
	if q == nil {
		log.Debugf("insert tail on nil queue")
		return false
	}

	q.root().insertBefore(newElement(strings.Clone(value)))
	return true
}

// RemoveHead detaches and returns the first element of the queue, or
// nil when the queue is nil or empty. When buf is non-empty, the
// element's value is copied into it, truncated to len(buf)-1 bytes
// and terminated with a zero byte; unused bytes are zeroed.
//
// The returned element belongs to the caller, who may Release it.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.head.next, buf)
}

// RemoveTail detaches and returns the last element of the queue with
// the same semantics as RemoveHead.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.Empty() {
		return nil
	}
	return q.remove(q.head.prev, buf)
}

func (*Queue) remove(e *Element, buf []byte) *Element {
	e.unlink()
	copyOut(buf, e.value)
	return e
}

func copyOut(buf []byte, value string) {
	if len(buf) == 0 {
		return
	}

	limit := len(buf) - 1
	n := copy(buf[:limit], value)
	for idx := n; idx < len(buf); idx++ {
		buf[idx] = 0
	}
}

// Size counts the elements in the queue. The count is not cached:
// this is an O(n) walk of the ring.
func (q *Queue) Size() int {
	if q == nil || q.head == nil {
		return 0
	}

	count := 0
	for e := q.head.next; e != q.head; e = e.next {
		count++
	}
	return count
}

// Empty reports whether the queue has no elements. Nil queues are
// empty.
func (q *Queue) Empty() bool { return q == nil || q.head == nil || q.head.empty() }

// Front returns the first element of the queue without removing it.
// When the queue is empty this is the sentinel, which is not Ok, and
// nil for a nil queue.
func (q *Queue) Front() *Element {
	if q == nil {
		return nil
	}
	return q.root().next
}

// Back returns the last element of the queue without removing it,
// with the same semantics as Front.
func (q *Queue) Back() *Element {
	if q == nil {
		return nil
	}
	return q.root().prev
}

// Values exports the contents of the queue, front to back.
func (q *Queue) Values() []string {
	if q.Empty() {
		return nil
	}

	out := make([]string, 0, q.Size())
	for e := q.head.next; e != q.head; e = e.next {
		out = append(out, e.value)
	}
	return out
}

// String renders the queue as a bracketed list of its values.
func (q *Queue) String() string { return fmt.Sprint(q.Values()) }

// Check walks the ring and reports every element whose neighbors do
// not link back to it, every nil link and any sentinel other than the
// queue's own. A healthy queue returns nil; all problems found wrap
// ErrCorruptRing.
func (q *Queue) Check() error {
	if q == nil {
		return ErrUninitializedQueue
	}

	root := q.root()
	ec := &erc.Collector{}

	seen := map[*Element]struct{}{}
	for idx, e := 0, root; ; idx++ {
		if _, ok := seen[e]; ok {
			ec.Add(fmt.Errorf("ring does not return to its sentinel: %w", ErrCorruptRing))
			break
		}
		seen[e] = struct{}{}

		switch {
		case e.next == nil || e.prev == nil:
			ec.Add(fmt.Errorf("element %d has a nil link: %w", idx, ErrCorruptRing))
			return ec.Resolve()
		case e.next.prev != e:
			ec.Add(fmt.Errorf("element %d: next does not link back: %w", idx, ErrCorruptRing))
		case e.prev.next != e:
			ec.Add(fmt.Errorf("element %d: previous does not link forward: %w", idx, ErrCorruptRing))
		}

		if e != root && e.root {
			ec.Add(fmt.Errorf("element %d is a foreign sentinel: %w", idx, ErrCorruptRing))
		}

		if e = e.next; e == root {
			break
		}
	}

	return ec.Resolve()
}
