// Package ringq provides a queue of strings stored in a circular,
// sentinel-rooted, doubly linked list, along with a set of in-place
// algorithms over that list: middle and duplicate deletion, full and
// k-group reversal, monotonic filtering, stable merge sorting and
// merging several queues into one.
//
// Every operation relinks the existing elements; none of them copy
// the list into an auxiliary slice. Queues are not safe for
// concurrent use. Callers that share a queue between goroutines must
// provide their own locking, one lock per queue.
//
// All methods on *Queue are safe to call on a nil queue, which
// behaves like an absent queue: inserts fail, removals return nil
// and counts are zero.
package ringq

import (
	"github.com/hlandau/xlog"
	"github.com/tychoish/fun/ers"
)

var log, Log = xlog.New("ringq")

// defaultSeverity keeps the package quiet unless an embedding program
// lowers the threshold through Log.
const defaultSeverity = xlog.SevNotice

func init() { Log.SetSeverity(defaultSeverity) }

// ErrUninitializedQueue is returned when validating a nil queue.
const ErrUninitializedQueue ers.Error = ers.Error("uninitialized queue")

// ErrCorruptRing is wrapped by all errors that report a broken link
// in a queue's ring.
const ErrCorruptRing ers.Error = ers.Error("corrupt ring")

// ErrInvalidOption is wrapped by errors produced when validating sort
// and merge options.
const ErrInvalidOption ers.Error = ers.Error("invalid option")
