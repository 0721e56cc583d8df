package ringq

// DeleteMiddle removes and releases the middle element of the queue,
// the element at index n/2 (0-based, rounding down), found with a
// slow and a fast cursor in a single pass. A queue with one element
// is emptied. Returns false when the queue is nil or empty.
func (q *Queue) DeleteMiddle() bool {
	if q.Empty() {
		return false
	}

	root := q.head
	slow, fast := root.next, root.next
	for fast != root && fast.next != root {
		slow = slow.next
		fast = fast.next.next
	}

	slow.unlink()
	slow.Release()
	return true
}

// DeleteDuplicates removes every element whose value occurs more than
// once in a run of equal values, keeping none of the copies. The
// queue must already be sorted for this to remove all duplicates.
// Returns false only for a nil queue.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil {
		return false
	}

	root := q.root()
	var dup *Element
	for e := root.next; e != root; {
		next := e.next
		switch {
		case next != root && next.value == e.value:
			// the next element carries the run forward and
			// is dropped when the run ends
			dup = next
			e.unlink()
			e.Release()
		case dup != nil:
			dup.unlink()
			dup.Release()
			dup = nil
		}
		e = next
	}

	return true
}

// Ascend removes every element that has a strictly smaller value
// anywhere to its right, leaving a non-decreasing queue, and returns
// the number of elements that remain.
func (q *Queue) Ascend() int {
	return q.monotonic(func(val, extreme string) bool { return val <= extreme })
}

// Descend removes every element that has a strictly greater value
// anywhere to its right, leaving a non-increasing queue, and returns
// the number of elements that remain.
func (q *Queue) Descend() int {
	return q.monotonic(func(val, extreme string) bool { return val >= extreme })
}

// monotonic walks from the tail to the head carrying the last kept
// value; keep decides whether a value survives against it. Dropped
// elements are released during the walk.
func (q *Queue) monotonic(keep func(val, extreme string) bool) int {
	if q.Empty() {
		return 0
	}

	root := q.head
	extreme := root.prev.value
	count := 0
	for e := root.prev; e != root; {
		prev := e.prev
		if keep(e.value, extreme) {
			extreme = e.value
			count++
		} else {
			e.unlink()
			e.Release()
		}
		e = prev
	}

	return count
}
