package topk

import (
	"cmp"
	"iter"

	topkerrors "github.com/topkit/topk/errors"
)

// Unique is a selector that keeps at most one resident item per logical key,
// always retaining the best-ranked representative of each key.
//
// It wraps a plain Selector with a key -> heap-slot index, kept in sync
// through the heap's move hook, so duplicate detection and in-place
// replacement cost O(1) map work instead of a scan. A key is present in the
// index if and only if an item with that key is resident.
type Unique[T any, K comparable] struct {
	sel   *Selector[T]
	keyOf func(T) K
	index map[K]int
}

// NewUnique creates a unique selector over an ordered type where the logical
// key is the item itself: once a value is resident, re-inserting it is a
// duplicate.
func NewUnique[T cmp.Ordered](capacity int, opts ...Option) (*Unique[T, T], error) {
	return NewUniqueFunc(capacity, Natural[T](), func(item T) T { return item }, opts...)
}

// NewUniqueFunc creates a unique selector with an injected order and logical
// key extractor. Two items are duplicates when their keys are equal, however
// they compare under the order.
//
// The key function is recomputed whenever an entry moves inside the heap, so
// it should be cheap; derive expensive keys once and store them in the item.
func NewUniqueFunc[T any, K comparable](capacity int, compare CompareFunc[T], key func(T) K, opts ...Option) (*Unique[T, K], error) {
	if key == nil {
		return nil, topkerrors.ErrNilKeyFunc
	}
	sel, err := NewFunc(capacity, compare, opts...)
	if err != nil {
		return nil, err
	}
	u := &Unique[T, K]{
		sel:   sel,
		keyOf: key,
		index: make(map[K]int, capacity),
	}
	sel.heap.OnMove(func(e entry[T], i int) {
		u.index[key(e.item)] = i
	})
	return u, nil
}

// Insert offers item to the selector. It returns true only when a new
// distinct key was admitted.
//
// If an item with an equal key is already resident and item ranks strictly
// better, the resident payload is replaced in place while keeping its
// original arrival sequence number: the logical entry is considered to have
// arrived at its first occurrence, which matters only under WithStable.
// Either way the call returns false: duplicates never count as newly
// admitted, even when they improve the stored value.
func (u *Unique[T, K]) Insert(item T) bool {
	u.sel.attempts++
	key := u.keyOf(item)
	if slot, resident := u.index[key]; resident {
		old := u.sel.heap.At(slot)
		if u.sel.base(item, old.item) < 0 {
			u.sel.heap.Fix(slot, entry[T]{item: item, seq: old.seq})
		}
		return false
	}

	old, evicted, ok := u.sel.insertEntry(entry[T]{item: item, seq: u.sel.attempts})
	if !ok {
		return false
	}
	// The new key was registered by the move hook during insertion; only the
	// evicted key needs cleanup.
	if evicted {
		delete(u.index, u.keyOf(old.item))
	}
	return true
}

// Extend inserts every element of items, in order.
func (u *Unique[T, K]) Extend(items iter.Seq[T]) {
	for item := range items {
		u.Insert(item)
	}
}

// Len returns the number of resident items, which never exceeds Capacity.
func (u *Unique[T, K]) Len() int { return u.sel.Len() }

// Capacity returns the maximum number of resident items, fixed at
// construction.
func (u *Unique[T, K]) Capacity() int { return u.sel.Capacity() }

// IsEmpty reports whether no items are resident.
func (u *Unique[T, K]) IsEmpty() bool { return u.sel.IsEmpty() }

// TotalAttempts returns the number of Insert calls made so far, including
// rejected and duplicate ones.
func (u *Unique[T, K]) TotalAttempts() uint64 { return u.sel.TotalAttempts() }

// AddAttempts bumps the attempts counter by delta without inserting anything.
func (u *Unique[T, K]) AddAttempts(delta uint64) { u.sel.AddAttempts(delta) }

// Contains reports whether an item with the same logical key as item is
// resident. Unlike Selector.Contains this is an O(1) index lookup.
func (u *Unique[T, K]) Contains(item T) bool {
	_, resident := u.index[u.keyOf(item)]
	return resident
}
