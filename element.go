package ringq

// Element is a single node of a queue. The queue's sentinel is also
// an Element, which reports false for Ok. Elements returned from the
// Remove operations are detached from their queue and owned by the
// caller.
type Element struct {
	next  *Element
	prev  *Element
	root  bool
	ok    bool
	value string
}

func newElement(val string) *Element { return &Element{value: val, ok: true} }

func newRoot() *Element {
	e := &Element{root: true}
	e.init()
	return e
}

// Value returns the element's string. Nil, sentinel and released
// elements have an empty value.
func (e *Element) Value() (out string) {
	if e != nil {
		out = e.value
	}
	return
}

// String implements fmt.Stringer.
func (e *Element) String() string { return e.Value() }

// Ok reports whether the element carries a value: false for nil
// elements, released elements and a queue's sentinel.
func (e *Element) Ok() bool { return e != nil && e.ok && !e.root }

// Next returns the following element in the ring. At the end of a
// queue this is the sentinel, which is non-nil but not Ok. Detached
// elements return nil.
func (e *Element) Next() *Element {
	if e == nil {
		return nil
	}
	return e.next
}

// Previous returns the preceding element in the ring, with the same
// semantics as Next.
func (e *Element) Previous() *Element {
	if e == nil {
		return nil
	}
	return e.prev
}

// Release drops the value of a detached element. Elements that are
// still linked into a queue, and sentinels, are not modified.
func (e *Element) Release() {
	if e == nil || e.root || e.next != nil || e.prev != nil {
		return
	}
	e.value = ""
	e.ok = false
}

////////////////////////////////////////////////////////////////////////
//
// ring primitives
//
// None of these allocate or release payloads, and all of them leave
// every ring they touch circular with matching next/prev links.
//
////////////////////////////////////////////////////////////////////////

func (e *Element) init() {
	e.next = e
	e.prev = e
}

func (e *Element) empty() bool    { return e.next == e }
func (e *Element) singular() bool { return !e.empty() && e.next == e.prev }

// insertAfter links val directly after e.
func (e *Element) insertAfter(val *Element) {
	val.prev = e
	val.next = e.next
	e.next.prev = val
	e.next = val
}

// insertBefore links val directly before e. Inserting before a
// sentinel appends to the tail of the queue.
func (e *Element) insertBefore(val *Element) { e.prev.insertAfter(val) }

func (e *Element) unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
}

// move unlinks e and relinks it directly after at.
func (e *Element) move(at *Element) {
	e.unlink()
	at.insertAfter(e)
}

// moveTail unlinks e and relinks it directly before at.
func (e *Element) moveTail(at *Element) {
	e.unlink()
	at.insertBefore(e)
}

// spliceAfter moves every element of the ring rooted at list to
// directly after e, preserving their order, and leaves list empty.
func (e *Element) spliceAfter(list *Element) {
	if list.empty() {
		return
	}

	first, last, next := list.next, list.prev, e.next

	first.prev = e
	e.next = first
	last.next = next
	next.prev = last

	list.init()
}

// spliceBefore is spliceAfter targeting the position before e; with a
// sentinel as e, this appends list to the tail.
func (e *Element) spliceBefore(list *Element) { e.prev.spliceAfter(list) }

// cutThrough moves the run of elements from e.next through 'through'
// (inclusive) into the ring rooted at dst, which is reinitialized
// first. The through element must follow e in the same ring; when
// through is e itself dst is left empty.
func (e *Element) cutThrough(dst, through *Element) {
	dst.init()
	if through == e {
		return
	}

	first, rest := e.next, through.next

	dst.next = first
	first.prev = dst
	dst.prev = through
	through.next = dst

	e.next = rest
	rest.prev = e
}
