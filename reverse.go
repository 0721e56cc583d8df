package ringq

// Reverse reverses the order of the queue in place by exchanging the
// next and previous links of every element and of the sentinel.
func (q *Queue) Reverse() {
	if q.Empty() {
		return
	}
	reverseRing(q.head)
}

func reverseRing(root *Element) {
	e := root
	for {
		e.next, e.prev = e.prev, e.next
		// the old next is now prev
		if e = e.prev; e == root {
			return
		}
	}
}

// ReverseK reverses the order of the elements within each consecutive
// group of k elements, keeping the groups themselves in order. A
// final group with fewer than k elements is left as it is, so when k
// is larger than the queue nothing changes. Values of k below 2 are
// a no-op.
func (q *Queue) ReverseK(k int) {
	if k < 2 {
		if k < 1 {
			log.Debugf("reverse with invalid group size %d", k)
		}
		return
	}

	if q.Empty() {
		return
	}

	root := q.head
	group := newRoot()
	start := root
	count := 0
	for e := root.next; e != root; {
		next := e.next
		if count++; count == k {
			start.cutThrough(group, e)
			reverseRing(group)
			start.spliceAfter(group)
			start = next.prev
			count = 0
		}
		e = next
	}
}

// Swap exchanges every pair of adjacent elements, leaving a trailing
// unpaired element in place. The result is the same as ReverseK(2).
func (q *Queue) Swap() {
	if q.Empty() {
		return
	}

	root := q.head
	for e := root.next; e != root && e.next != root; e = e.next {
		e.move(e.next)
	}
}
