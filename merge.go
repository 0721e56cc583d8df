package ringq

import (
	"fmt"

	"github.com/tychoish/fun/dt"
	"github.com/tychoish/fun/erc"
)

// Context registers one queue for a multi-queue merge, along with
// the number of elements it holds. Chain.Add records the size at
// registration and the owner may adjust it with SetSize; a merge
// replaces the recorded sizes with the actual counts.
type Context struct {
	queue *Queue
	size  int
}

// Queue returns the queue registered with the context.
func (c *Context) Queue() *Queue { return c.queue }

// Size returns the element count recorded for the context.
func (c *Context) Size() int { return c.size }

// SetSize overrides the recorded element count.
func (c *Context) SetSize(n int) { c.size = n }

// Chain is an ordered ring of queue contexts. The zero value is an
// empty chain ready to use. The first context in the chain receives
// the result of a merge.
type Chain struct {
	list dt.List[*Context]
}

// Add registers the queue at the end of the chain and returns its
// context. Nil queues are registered as empty contexts. The recorded
// size is a snapshot; later inserts are not reflected in it.
func (c *Chain) Add(q *Queue) *Context {
	ctx := &Context{queue: q, size: q.Size()}
	c.list.PushBack(ctx)
	return ctx
}

// Len returns the number of contexts in the chain.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return c.list.Len()
}

// Front returns the first context of the chain, or nil for an empty
// chain.
func (c *Chain) Front() *Context {
	if c.Len() == 0 {
		return nil
	}
	return c.list.Front().Value()
}

// Contexts exports the contexts of the chain in order.
func (c *Chain) Contexts() []*Context {
	if c.Len() == 0 {
		return nil
	}

	out := make([]*Context, 0, c.list.Len())
	for e := c.list.Front(); e.Ok(); e = e.Next() {
		out = append(out, e.Value())
	}
	return out
}

// MergeStrategy selects how Merge combines the queues of a chain.
type MergeStrategy int

const (
	// MergeConcatenate splices every queue onto the first and
	// sorts the combined queue once.
	MergeConcatenate MergeStrategy = iota
	// MergePairwise sorts each queue on its own and then folds
	// them into the first one with repeated two-way merges.
	MergePairwise
)

func (s MergeStrategy) String() string {
	switch s {
	case MergeConcatenate:
		return "concatenate"
	case MergePairwise:
		return "pairwise"
	default:
		return fmt.Sprintf("MergeStrategy(%d)", int(s))
	}
}

// MergeOptions configures MergeWith. The zero value produces an
// ascending lexical merge by concatenation.
type MergeOptions struct {
	// Descending reverses the order of the result.
	Descending bool
	// Strategy selects how the queues are combined.
	Strategy MergeStrategy
	// Sort configures the sorts run during the merge. Its
	// Descending field is ignored in favor of the field above.
	Sort SortOptions
}

// Validate checks the options, including the embedded sort options.
func (o *MergeOptions) Validate() error {
	ec := &erc.Collector{}

	if o.Strategy != MergeConcatenate && o.Strategy != MergePairwise {
		ec.Add(fmt.Errorf("merge strategy %s: %w", o.Strategy, ErrInvalidOption))
	}

	o.Sort.Descending = o.Descending
	ec.Add(o.Sort.Validate())

	return ec.Resolve()
}

// Merge combines every queue in the chain into the first context's
// queue, sorted lexically in the requested direction. The other
// queues are left empty with a recorded size of zero. Returns the
// number of elements in the merged queue, counted after the merge
// and also recorded on the first context, or zero for a nil or empty
// chain. A queue registered more than once is merged once.
func Merge(chain *Chain, descending bool) int {
	total, _ := MergeWith(chain, MergeOptions{Descending: descending})
	return total
}

// MergeWith is Merge with explicit options. Only invalid options
// produce an error, in which case no queue is modified.
func MergeWith(chain *Chain, opts MergeOptions) (int, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	if chain.Len() == 0 {
		return 0, nil
	}

	contexts := chain.Contexts()
	first := contexts[0]
	if first.queue == nil {
		first.queue = New()
	}

	log.Debugf("merging %d queues (%s)", len(contexts), opts.Strategy)

	rest := distinct(first, contexts[1:])
	switch opts.Strategy {
	case MergePairwise:
		mergePairwise(first, rest, opts.Sort)
	default:
		mergeConcatenate(first, rest, opts.Sort)
	}

	first.size = first.queue.Size()
	return first.size, nil
}

// distinct zeroes every context and returns those whose queue is
// non-nil and not already registered earlier in the chain.
func distinct(into *Context, rest []*Context) []*Context {
	seen := map[*Queue]struct{}{into.queue: {}}
	out := make([]*Context, 0, len(rest))
	for _, ctx := range rest {
		ctx.size = 0
		if ctx.queue == nil {
			continue
		}
		if _, ok := seen[ctx.queue]; ok {
			log.Debugf("queue registered more than once in merge chain")
			continue
		}
		seen[ctx.queue] = struct{}{}
		out = append(out, ctx)
	}
	return out
}

func mergeConcatenate(into *Context, rest []*Context, opts SortOptions) {
	root := into.queue.root()
	for _, ctx := range rest {
		if ctx.queue.head != nil {
			root.spliceBefore(ctx.queue.head)
		}
	}

	_ = into.queue.SortWith(opts)
}

func mergePairwise(into *Context, rest []*Context, opts SortOptions) {
	cmp := opts.comparator()
	_ = into.queue.SortWith(opts)

	root := into.queue.root()
	acc := detach(root)
	for _, ctx := range rest {
		if ctx.queue.Empty() {
			continue
		}

		_ = ctx.queue.SortWith(opts)
		acc = mergeTwo(acc, detach(ctx.queue.head), cmp)
	}

	relink(root, acc)
}

// detach empties the ring rooted at root and returns its elements as
// a nil-terminated chain linked through next.
func detach(root *Element) *Element {
	if root.empty() {
		return nil
	}

	chain := root.next
	root.prev.next = nil
	root.init()

	return chain
}
