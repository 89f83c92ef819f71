package topk

import (
	"cmp"
	"fmt"
	"iter"

	topkerrors "github.com/topkit/topk/errors"
	"github.com/topkit/topk/internal/bheap"
)

// entry is a stored item tagged with the arrival sequence number assigned at
// its first insertion (a snapshot of the attempts counter). The sequence is
// only consulted when stability is enabled.
type entry[T any] struct {
	item T
	seq  uint64
}

// Selector retains the K best items seen so far under a total order.
//
// The internal heap keeps the current worst resident at the root, so a full
// selector rejects a candidate with a single comparison and replaces the
// boundary item in O(log K) otherwise.
type Selector[T any] struct {
	heap     *bheap.Heap[entry[T]]
	base     CompareFunc[T] // effective order: caller's order, inverted under WithLargest
	capacity int
	attempts uint64
	stable   bool
}

// New creates a selector that keeps the capacity smallest items under their
// natural order (or the largest, with WithLargest).
//
// Construction fails with errors.ErrZeroCapacity if capacity < 1.
func New[T cmp.Ordered](capacity int, opts ...Option) (*Selector[T], error) {
	return NewFunc(capacity, Natural[T](), opts...)
}

// NewFunc creates a selector that keeps the capacity items ordering first
// under compare (or last, with WithLargest).
func NewFunc[T any](capacity int, compare CompareFunc[T], opts ...Option) (*Selector[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", topkerrors.ErrZeroCapacity, capacity)
	}
	if compare == nil {
		return nil, topkerrors.ErrNilCompare
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	base := compare
	if cfg.largest {
		base = Reverse(base)
	}
	s := &Selector[T]{
		base:     base,
		capacity: capacity,
		stable:   cfg.stable,
	}
	s.heap = bheap.New(s.compareEntries, max(0, min(cfg.preallocate, capacity)))
	return s, nil
}

// compareEntries is the composite internal order: the base order on payloads,
// with the arrival sequence as a tie-breaker when stability is enabled. A
// later arrival ranks closer to the eviction boundary, so a tying insert into
// a full selector never displaces an earlier resident, and sorting ascending
// yields base-order ties in arrival order.
func (s *Selector[T]) compareEntries(a, b entry[T]) int {
	if c := s.base(a.item, b.item); c != 0 {
		return c
	}
	if !s.stable {
		return 0
	}
	return cmp.Compare(a.seq, b.seq)
}

// Insert offers item to the selector. It reports whether the item was
// admitted: true if the selector had spare capacity or item displaced the
// current boundary item, false if item was rejected as not better than the
// worst resident. Every call counts toward TotalAttempts.
func (s *Selector[T]) Insert(item T) bool {
	s.attempts++
	_, _, ok := s.insertEntry(entry[T]{item: item, seq: s.attempts})
	return ok
}

// insertEntry implements the core replace-at-boundary algorithm. When the
// selector is full and e is admitted, the displaced boundary entry is
// returned with evicted=true so the uniqueness layer can unregister its key.
func (s *Selector[T]) insertEntry(e entry[T]) (old entry[T], evicted, ok bool) {
	if s.heap.Len() < s.capacity {
		s.heap.Push(e)
		return old, false, true
	}
	// capacity >= 1 is enforced at construction, so the heap is non-empty here.
	if s.compareEntries(s.heap.Root(), e) <= 0 {
		return old, false, false
	}
	return s.heap.ReplaceRoot(e), true, true
}

// Extend inserts every element of items, in order.
func (s *Selector[T]) Extend(items iter.Seq[T]) {
	for item := range items {
		s.Insert(item)
	}
}

// Len returns the number of resident items, which never exceeds Capacity.
func (s *Selector[T]) Len() int { return s.heap.Len() }

// Capacity returns the maximum number of resident items, fixed at
// construction.
func (s *Selector[T]) Capacity() int { return s.capacity }

// IsEmpty reports whether no items are resident.
func (s *Selector[T]) IsEmpty() bool { return s.Len() == 0 }

// TotalAttempts returns the number of Insert calls made so far, including
// rejected and duplicate ones. Together with Len it lets callers infer
// rejection rates without any extra bookkeeping.
func (s *Selector[T]) TotalAttempts() uint64 { return s.attempts }

// AddAttempts bumps the attempts counter by delta without inserting anything,
// for callers that discard candidates before they reach the selector but
// still want TotalAttempts to reflect them.
func (s *Selector[T]) AddAttempts(delta uint64) { s.attempts += delta }

// Contains reports whether some resident item compares equal to item under
// the configured order. It scans all residents, costing O(K).
func (s *Selector[T]) Contains(item T) bool {
	for _, e := range s.heap.Items() {
		if s.base(e.item, item) == 0 {
			return true
		}
	}
	return false
}
