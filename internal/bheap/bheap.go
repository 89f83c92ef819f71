// Package bheap provides a binary max-heap over a caller-supplied order.
//
// The heap is the storage primitive behind the bounded selector: the root is
// always the greatest element under the comparison function, which makes it
// the natural eviction boundary when the selector keeps the K least elements.
// An optional move hook reports every index change, so a wrapper can maintain
// an element -> slot index without scanning.
package bheap

// Heap is a binary max-heap ordered by cmp. The zero value is not usable;
// construct with New.
type Heap[E any] struct {
	cmp   func(a, b E) int
	items []E
	moved func(e E, i int) // optional slot-tracking hook
}

// New returns an empty heap ordered by cmp, with backing storage
// pre-reserved for reserve elements.
func New[E any](cmp func(a, b E) int, reserve int) *Heap[E] {
	return &Heap[E]{
		cmp:   cmp,
		items: make([]E, 0, reserve),
	}
}

// OnMove registers fn to be called whenever an element is placed at an index,
// including initial placement on Push. Elements removed from the heap are not
// reported; callers observe removals through PopRoot and ReplaceRoot return
// values instead.
func (h *Heap[E]) OnMove(fn func(e E, i int)) {
	h.moved = fn
}

// Len returns the number of elements in the heap.
func (h *Heap[E]) Len() int { return len(h.items) }

// Items returns the backing slice in heap order. The caller must not modify
// element positions.
func (h *Heap[E]) Items() []E { return h.items }

// Root returns the greatest element. Precondition: Len() > 0.
func (h *Heap[E]) Root() E { return h.items[0] }

// At returns the element at index i. Precondition: 0 <= i < Len().
func (h *Heap[E]) At(i int) E { return h.items[i] }

// Push adds e to the heap.
func (h *Heap[E]) Push(e E) {
	h.items = append(h.items, e)
	i := len(h.items) - 1
	if h.moved != nil {
		h.moved(e, i)
	}
	h.siftUp(i)
}

// ReplaceRoot replaces the greatest element with e and restores heap order.
// Returns the displaced element. Precondition: Len() > 0.
func (h *Heap[E]) ReplaceRoot(e E) E {
	old := h.items[0]
	h.set(0, e)
	h.siftDown(0)
	return old
}

// PopRoot removes and returns the greatest element. Precondition: Len() > 0.
func (h *Heap[E]) PopRoot() E {
	root := h.items[0]
	n := len(h.items) - 1
	last := h.items[n]
	var zero E
	h.items[n] = zero
	h.items = h.items[:n]
	if n > 0 {
		h.set(0, last)
		h.siftDown(0)
	}
	return root
}

// Fix replaces the element at index i with e and restores heap order.
// Precondition: 0 <= i < Len().
func (h *Heap[E]) Fix(i int, e E) {
	h.set(i, e)
	if i > 0 && h.cmp(h.items[i], h.items[(i-1)/2]) > 0 {
		h.siftUp(i)
		return
	}
	h.siftDown(i)
}

// Take hands over the backing slice, in heap order, and leaves the heap
// empty. Reserved capacity is not retained.
func (h *Heap[E]) Take() []E {
	items := h.items
	h.items = nil
	return items
}

func (h *Heap[E]) set(i int, e E) {
	h.items[i] = e
	if h.moved != nil {
		h.moved(e, i)
	}
}

func (h *Heap[E]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	if h.moved != nil {
		h.moved(h.items[i], i)
		h.moved(h.items[j], j)
	}
}

func (h *Heap[E]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) <= 0 {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap[E]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		max := left
		if right := left + 1; right < n && h.cmp(h.items[right], h.items[left]) > 0 {
			max = right
		}
		if h.cmp(h.items[max], h.items[i]) <= 0 {
			return
		}
		h.swap(i, max)
		i = max
	}
}
