// Package errors defines all exported error sentinels for the topk library.
//
// This is the single source of truth for error values. The top-level topk
// package wraps these with fmt.Errorf("%w: ...") at use sites, so errors.Is
// checks work regardless of the added context.
package errors

import "errors"

// Construction errors
var (
	ErrZeroCapacity = errors.New("topk: capacity must be at least 1")
	ErrNilCompare   = errors.New("topk: comparison function must not be nil")
	ErrNilKeyFunc   = errors.New("topk: key function must not be nil")
)
