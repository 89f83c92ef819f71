package topk

import (
	"iter"
	"slices"
)

// Drain consumes the selector, yielding every resident item in fully sorted
// best-first order: ascending for a keep-smallest selector, descending for a
// keep-largest one, with base-order ties in arrival order when stability is
// enabled.
//
// The returned sequence is finite, single-use, and non-restartable: once it
// has been iterated (even partially), ranging over it again yields nothing.
// Draining empties the selector; Len drops to zero while TotalAttempts is
// preserved, and a later Insert behaves as on a freshly constructed selector.
func (s *Selector[T]) Drain() iter.Seq[T] {
	entries := s.heap.Take()
	// Ascending under the composite order is best-first for both
	// orientations, since WithLargest is folded into the base comparator.
	slices.SortFunc(entries, s.compareEntries)
	return func(yield func(T) bool) {
		for _, e := range entries {
			if !yield(e.item) {
				break
			}
		}
		entries = nil
	}
}

// SortedSlice consumes the selector and returns all resident items as a
// slice in the same best-first order Drain yields.
func (s *Selector[T]) SortedSlice() []T {
	return slices.Collect(s.Drain())
}

// Drain consumes the selector, yielding every resident item in fully sorted
// best-first order. See Selector.Drain for the ordering and single-use
// contract. The key index is cleared along with the residents.
func (u *Unique[T, K]) Drain() iter.Seq[T] {
	clear(u.index)
	return u.sel.Drain()
}

// SortedSlice consumes the selector and returns all resident items as a
// slice in the same best-first order Drain yields.
func (u *Unique[T, K]) SortedSlice() []T {
	return slices.Collect(u.Drain())
}
