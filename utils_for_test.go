package ringq_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/ringq"
)

func makeQueue(t testing.TB, values ...string) *ringq.Queue {
	t.Helper()
	q := ringq.New()
	for _, v := range values {
		assert.True(t, q.InsertTail(v))
	}
	assert.Equal(t, q.Size(), len(values))
	return q
}

func randomValues(size, spread int) []string {
	out := make([]string, size)
	for idx := range out {
		out[idx] = strconv.Itoa(rand.Intn(spread))
	}
	return out
}

// assertValues fails the test unless the queue holds exactly the
// expected values in order and its ring is intact in both directions.
func assertValues(t testing.TB, q *ringq.Queue, expected ...string) {
	t.Helper()
	assert.NotError(t, q.Check())

	got := q.Values()
	if len(got) != len(expected) {
		t.Fatalf("queue %v has %d values, expected %v", got, len(got), expected)
	}
	for idx := range expected {
		if got[idx] != expected[idx] {
			t.Fatalf("at index %d: %q != %q (queue %v, expected %v)", idx, got[idx], expected[idx], got, expected)
		}
	}
	assert.Equal(t, q.Size(), len(expected))

	idx := len(expected) - 1
	for e := q.Back(); e.Ok(); e = e.Previous() {
		assert.Equal(t, e.Value(), expected[idx])
		idx--
	}
	assert.Equal(t, idx, -1)
}
