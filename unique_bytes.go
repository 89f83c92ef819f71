package topk

import (
	"github.com/zeebo/xxh3"

	topkerrors "github.com/topkit/topk/errors"
)

// NewUniqueBytes creates a unique selector whose logical keys are byte
// slices, which cannot be used as map keys directly. Each key is reduced to
// its 128-bit xxHash3 digest and residents are indexed by that digest; at 128
// bits, distinct keys colliding is vanishingly unlikely, so the digest serves
// as the key identity.
//
// Use this when keys are document IDs, URLs, serialized tuples, or other
// variable-length byte content:
//
//	sel, err := topk.NewUniqueBytes(100,
//	    topk.OrderByKey(func(r Result) float64 { return r.Score }),
//	    func(r Result) []byte { return r.DocID },
//	    topk.WithLargest())
//
// The key function is recomputed (and re-hashed) whenever an entry moves
// inside the heap; keep it allocation-free where possible.
func NewUniqueBytes[T any](capacity int, compare CompareFunc[T], key func(T) []byte, opts ...Option) (*Unique[T, xxh3.Uint128], error) {
	if key == nil {
		return nil, topkerrors.ErrNilKeyFunc
	}
	return NewUniqueFunc(capacity, compare, func(item T) xxh3.Uint128 {
		return xxh3.Hash128(key(item))
	}, opts...)
}
