package ringq_test

import (
	"fmt"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/ringq"
)

func TestReverse(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		q := makeQueue(t, "1", "2", "3", "4")
		q.Reverse()
		assertValues(t, q, "4", "3", "2", "1")
	})
	t.Run("Involution", func(t *testing.T) {
		input := randomValues(101, 1000)
		q := makeQueue(t, input...)
		q.Reverse()
		q.Reverse()
		assertValues(t, q, input...)
	})
	t.Run("SmallQueues", func(t *testing.T) {
		q := ringq.New()
		q.Reverse()
		assertValues(t, q)

		q.InsertTail("only")
		q.Reverse()
		assertValues(t, q, "only")
	})
	t.Run("InsertAfterReverse", func(t *testing.T) {
		q := makeQueue(t, "a", "b")
		q.Reverse()
		q.InsertHead("c")
		q.InsertTail("z")
		assertValues(t, q, "c", "b", "a", "z")
	})
}

func TestReverseK(t *testing.T) {
	input := []string{"1", "2", "3", "4", "5", "6"}
	for _, tt := range []struct {
		k        int
		expected []string
	}{
		{k: -1, expected: []string{"1", "2", "3", "4", "5", "6"}},
		{k: 0, expected: []string{"1", "2", "3", "4", "5", "6"}},
		{k: 1, expected: []string{"1", "2", "3", "4", "5", "6"}},
		{k: 2, expected: []string{"2", "1", "4", "3", "6", "5"}},
		{k: 3, expected: []string{"3", "2", "1", "6", "5", "4"}},
		{k: 4, expected: []string{"4", "3", "2", "1", "5", "6"}},
		{k: 5, expected: []string{"5", "4", "3", "2", "1", "6"}},
		{k: 6, expected: []string{"6", "5", "4", "3", "2", "1"}},
		{k: 7, expected: []string{"1", "2", "3", "4", "5", "6"}},
	} {
		t.Run(fmt.Sprint("K", tt.k), func(t *testing.T) {
			q := makeQueue(t, input...)
			q.ReverseK(tt.k)
			assertValues(t, q, tt.expected...)
		})
	}
	t.Run("Empty", func(t *testing.T) {
		q := ringq.New()
		q.ReverseK(3)
		assertValues(t, q)
	})
	t.Run("TwiceRestoresFullGroups", func(t *testing.T) {
		for k := 1; k <= 10; k++ {
			values := randomValues(37, 500)
			q := makeQueue(t, values...)
			q.ReverseK(k)
			q.ReverseK(k)
			assertValues(t, q, values...)
		}
	})
	t.Run("MatchesSliceReference", func(t *testing.T) {
		values := randomValues(50, 500)
		for k := 1; k <= 12; k++ {
			expected := append([]string{}, values...)
			for start := 0; start+k <= len(expected); start += k {
				for i, j := start, start+k-1; i < j; i, j = i+1, j-1 {
					expected[i], expected[j] = expected[j], expected[i]
				}
			}

			q := makeQueue(t, values...)
			q.ReverseK(k)
			assertValues(t, q, expected...)
		}
	})
}

func TestSwap(t *testing.T) {
	t.Run("Even", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "c", "d")
		q.Swap()
		assertValues(t, q, "b", "a", "d", "c")
	})
	t.Run("Odd", func(t *testing.T) {
		q := makeQueue(t, "a", "b", "c")
		q.Swap()
		assertValues(t, q, "b", "a", "c")
	})
	t.Run("SmallQueues", func(t *testing.T) {
		q := ringq.New()
		q.Swap()
		assertValues(t, q)
		q.InsertTail("a")
		q.Swap()
		assertValues(t, q, "a")
	})
	t.Run("SameAsReverseTwo", func(t *testing.T) {
		for size := 0; size < 12; size++ {
			values := randomValues(size, 100)
			swapped := makeQueue(t, values...)
			reversed := makeQueue(t, values...)

			swapped.Swap()
			reversed.ReverseK(2)

			sv, rv := swapped.Values(), reversed.Values()
			assert.Equal(t, len(sv), len(rv))
			for idx := range sv {
				check.Equal(t, sv[idx], rv[idx])
			}
			assert.NotError(t, swapped.Check())
		}
	})
}
