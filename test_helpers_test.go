package topk

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"slices"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

func generateValues(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = int(rng.Int32())
	}
	return values
}

// refTopK is the sort-and-truncate reference: the true K best elements of
// input, best-first.
func refTopK(input []int, k int, largest bool) []int {
	sorted := slices.Clone(input)
	slices.Sort(sorted)
	if largest {
		slices.Reverse(sorted)
	}
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// tagged is a test item with an ordering priority and an identifying tag that
// does not participate in ordering, for observing tie-breaking and payload
// replacement.
type tagged struct {
	tag  string
	prio int
}

func byPrio() CompareFunc[tagged] {
	return OrderByKey(func(v tagged) int { return v.prio })
}

func tags(items []tagged) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.tag
	}
	return out
}
