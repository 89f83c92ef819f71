// Package topk implements a bounded top-K selection container: a selector of
// fixed capacity K that retains only the K best items seen in a stream,
// discarding the rest without ever holding the full input.
//
// A selector is configured at construction along three independent axes:
// orientation (keep the K smallest items, the default, or the K largest via
// WithLargest), uniqueness (at most one resident item per logical key, keeping
// the best representative of each key), and stability (WithStable: items that
// compare equal are retained and emitted in arrival order). All combinations
// share one heap-based core; each insert costs O(log K), or O(1) when the item
// is rejected at the boundary.
//
// # Basic Usage
//
// Keeping the 10 smallest values of a stream:
//
//	sel, err := topk.New[int](10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, v := range values {
//	    sel.Insert(v)
//	}
//	for v := range sel.Drain() { // ascending
//	    fmt.Println(v)
//	}
//
// Keeping the 10 highest-scoring results, one per document ID:
//
//	sel, err := topk.NewUniqueFunc(10,
//	    topk.OrderByKey(func(r Result) float64 { return r.Score }),
//	    func(r Result) string { return r.DocID },
//	    topk.WithLargest())
//
// # Ordering
//
// Items are ordered by their natural order (New, NewUnique), by an injected
// comparison function (NewFunc, NewUniqueFunc), by a derived key (OrderByKey),
// or by an explicit rank attached to each item (Ranked, RankOrder).
//
// # Concurrency
//
// A selector is single-owner and not safe for concurrent use. It holds no
// locks and performs no I/O; memory use is bounded by K resident items plus,
// for unique selectors, a key index of at most K entries.
//
// # Package Structure
//
//   - Public API: topk.go (Selector), unique.go (Unique), drain.go (Drain)
//   - Configuration: options.go (Option, With* functions)
//   - Ordering: compare.go (CompareFunc, Natural, Reverse, OrderByKey, Ranked)
//   - Byte-slice keys: unique_bytes.go (NewUniqueBytes, xxh3 key identity)
//   - Core heap: internal/bheap (bounded max-heap with slot tracking)
//   - Benchmarks: cmd/bench (workload harness), internal/wload (generators)
package topk
