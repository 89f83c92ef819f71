// Package wload derives deterministic pseudo-random workloads for benchmarks
// and stress tests. Values are computed positionally from a seed, so a
// workload can be regenerated or consumed in parallel without storing it.
package wload

import (
	"encoding/binary"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// U64 returns the i-th value of the stream identified by seed.
func U64(seed, i uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], i)
	return xxhash.Sum64(buf[:])
}

// Bounded maps a 64-bit hash uniformly to [0, n). Uses the "fastrange"
// technique (multiply and take the high word) to avoid modulo bias.
func Bounded(hash, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, n)
	return hi
}
