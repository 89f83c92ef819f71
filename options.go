package topk

// Option is a functional option for configuring a selector at construction.
type Option func(*config)

type config struct {
	largest     bool
	stable      bool
	preallocate int // requested backing storage, capped at capacity
}

func defaultConfig() *config {
	return &config{}
}

// WithLargest keeps the K greatest items instead of the K least. The same
// core algorithm runs under an inverted comparator; every other guarantee is
// unchanged.
func WithLargest() Option {
	return func(c *config) {
		c.largest = true
	}
}

// WithStable makes the selector behave like a stable sort with respect to
// ties: among items that compare equal, earlier-arriving items are preferred
// for retention and drained output lists them in arrival order. Each resident
// item carries the arrival sequence number of its first insertion.
func WithStable() Option {
	return func(c *config) {
		c.stable = true
	}
}

// WithPreallocate reserves backing storage for n items up front, avoiding
// incremental reallocation during the initial fill phase. Values above the
// capacity are capped at the capacity; the selector never holds more than K
// items regardless.
func WithPreallocate(n int) Option {
	return func(c *config) {
		c.preallocate = n
	}
}
