package topk

import "cmp"

// CompareFunc defines a total order over T following the cmp convention:
// negative when a orders before b, zero when they are equal, positive when a
// orders after b. "Orders before" means "better" for a keep-smallest selector.
type CompareFunc[T any] func(a, b T) int

// Natural returns the natural order of an ordered type.
func Natural[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// Reverse inverts an order. A keep-smallest selector constructed with a
// reversed comparator behaves identically to one constructed with WithLargest.
func Reverse[T any](c CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int { return c(b, a) }
}

// OrderByKey orders items by a derived key. The key is recomputed on every
// comparison; callers on a hot path should pre-compute it into the item (or
// use Ranked) instead.
func OrderByKey[T any, K cmp.Ordered](key func(T) K) CompareFunc[T] {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Ranked pairs an item with an externally computed rank so that values
// without a usable natural order can be selected purely by that rank.
type Ranked[T any] struct {
	Item T
	Rank float64
}

// RankOrder orders Ranked values by their Rank field alone.
func RankOrder[T any]() CompareFunc[Ranked[T]] {
	return func(a, b Ranked[T]) int { return cmp.Compare(a.Rank, b.Rank) }
}
