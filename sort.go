package ringq

import (
	"fmt"
	"strings"

	"github.com/tychoish/fun/erc"
)

// Comparator orders two values, returning a negative number when a
// sorts before b, zero when they are equivalent and a positive number
// otherwise.
type Comparator func(a, b string) int

// Lexical compares strings byte-wise, as strings.Compare does.
func Lexical(a, b string) int { return strings.Compare(a, b) }

// Reverse flips the direction of a comparator. Equivalent values stay
// equivalent, so sorts with a reversed comparator remain stable.
func Reverse(cmp Comparator) Comparator { return func(a, b string) int { return cmp(b, a) } }

// SortStrategy selects the merge sort implementation. Both strategies
// are stable and produce identical results.
type SortStrategy int

const (
	// SortTopDown splits the list at its midpoint and sorts each
	// half recursively.
	SortTopDown SortStrategy = iota
	// SortBottomUp merges runs of doubling length using a fixed
	// set of pending lists and no recursion.
	SortBottomUp
)

func (s SortStrategy) String() string {
	switch s {
	case SortTopDown:
		return "top-down"
	case SortBottomUp:
		return "bottom-up"
	default:
		return fmt.Sprintf("SortStrategy(%d)", int(s))
	}
}

// SortOptions configures SortWith. The zero value sorts in ascending
// lexical order with the top-down strategy.
type SortOptions struct {
	// Descending reverses the order of the comparator.
	Descending bool
	// Strategy selects the merge sort implementation.
	Strategy SortStrategy
	// Comparator overrides the lexical ordering when non-nil.
	Comparator Comparator
}

// Validate checks the options and fills in the default comparator.
func (o *SortOptions) Validate() error {
	ec := &erc.Collector{}

	if o.Strategy != SortTopDown && o.Strategy != SortBottomUp {
		ec.Add(fmt.Errorf("sort strategy %s: %w", o.Strategy, ErrInvalidOption))
	}

	if o.Comparator == nil {
		o.Comparator = Lexical
	}

	return ec.Resolve()
}

func (o SortOptions) comparator() Comparator {
	if o.Descending {
		return Reverse(o.Comparator)
	}
	return o.Comparator
}

func (o SortOptions) sorter() func(*Element, Comparator) *Element {
	if o.Strategy == SortBottomUp {
		return mergeSortBottomUp
	}
	return mergeSortTopDown
}

// Sort orders the queue lexically, ascending or descending. Sorting
// is stable: equal values keep their relative order.
func (q *Queue) Sort(descending bool) {
	_ = q.SortWith(SortOptions{Descending: descending})
}

// SortWith sorts the queue according to the options. Only invalid
// options produce an error, in which case the queue is unchanged.
func (q *Queue) SortWith(opts SortOptions) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	if q.Empty() || q.head.singular() {
		return nil
	}

	root := q.head
	root.prev.next = nil
	relink(root, opts.sorter()(root.next, opts.comparator()))

	return nil
}

// relink restores the ring after a sort or merge: chain is a
// nil-terminated list linked only through next, and every previous
// link is rebuilt in one pass before closing the ring on root.
func relink(root, chain *Element) {
	prev := root
	for e := chain; e != nil; e = e.next {
		prev.next = e
		e.prev = prev
		prev = e
	}

	prev.next = root
	root.prev = prev
}

// mergeTwo combines two sorted, nil-terminated chains. On ties the
// element from left comes first.
func mergeTwo(left, right *Element, cmp Comparator) *Element {
	var head *Element
	tail := &head
	for left != nil && right != nil {
		if cmp(left.value, right.value) > 0 {
			*tail = right
			right = right.next
		} else {
			*tail = left
			left = left.next
		}
		tail = &(*tail).next
	}

	if left != nil {
		*tail = left
	} else {
		*tail = right
	}

	return head
}

// mergeSortTopDown sorts a nil-terminated chain. The fast cursor
// moves two steps for each step of the slow cursor, so the slow
// cursor stops at the start of the second half.
func mergeSortTopDown(head *Element, cmp Comparator) *Element {
	if head == nil || head.next == nil {
		return head
	}

	var last *Element
	slow, fast := head, head
	for fast != nil && fast.next != nil {
		fast = fast.next.next
		last = slow
		slow = slow.next
	}
	last.next = nil

	return mergeTwo(mergeSortTopDown(head, cmp), mergeSortTopDown(slow, cmp), cmp)
}

// mergeSortBottomUp sorts a nil-terminated chain without recursion.
// pending[i] is either empty or a sorted run of 2^i elements, and
// adding an element works like incrementing a binary counter: runs
// of equal size are merged and carried upward. Runs in higher slots
// always hold earlier elements, and are passed as the left side of
// each merge to keep the sort stable.
func mergeSortBottomUp(head *Element, cmp Comparator) *Element {
	var pending [64]*Element

	for head != nil {
		carry := head
		head = head.next
		carry.next = nil

		slot := 0
		for ; pending[slot] != nil; slot++ {
			carry = mergeTwo(pending[slot], carry, cmp)
			pending[slot] = nil
		}
		pending[slot] = carry
	}

	var out *Element
	for slot := range pending {
		if pending[slot] != nil {
			out = mergeTwo(pending[slot], out, cmp)
		}
	}

	return out
}
