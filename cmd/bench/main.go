// Bench is a benchmarking tool for measuring selector insert throughput,
// drain latency, and memory usage under configurable synthetic or replayed
// workloads.
//
// Usage:
//
//	go run ./cmd/bench -items 10000000 -k 1000 -unique -keyspace 100000
//
// Flags:
//
//	-items      Number of values to stream through the selector (default: 10,000,000)
//	-k          Selector capacity (default: 1000)
//	-largest    Keep the K largest values instead of the K smallest
//	-unique     Deduplicate by value (one resident per distinct value)
//	-stable     Enable arrival-order tie-breaking
//	-keyspace   Map values into [0, n) to control the duplicate rate (0 = full 64-bit range)
//	-hash       Value derivation hash: xxhash or murmur3 (default: xxhash)
//	-input      Replay little-endian uint64 samples from this file instead of generating
//	-parallel   Run N independent copies of the workload concurrently (default: 1)
//	-seed       Base seed for value derivation (default: 1)
//	-cpuprofile Write a CPU profile to this file
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"iter"
	"os"
	"runtime/pprof"
	"time"

	"github.com/edsrzf/mmap-go"
	"github.com/spaolacci/murmur3"
	"golang.org/x/sync/errgroup"

	"github.com/topkit/topk"
	"github.com/topkit/topk/internal/wload"
)

// selector is the common surface of topk.Selector and topk.Unique that the
// harness needs.
type selector interface {
	Insert(uint64) bool
	Len() int
	TotalAttempts() uint64
	Drain() iter.Seq[uint64]
}

type benchConfig struct {
	items    int
	k        int
	largest  bool
	unique   bool
	stable   bool
	keyspace uint64
	hash     string
	seed     uint64
	replay   []byte // mmapped sample file, 8 bytes per value; nil when generating
}

type benchResult struct {
	attempts   uint64
	resident   int
	insertTime time.Duration
	drainTime  time.Duration
	checksum   uint64
}

func newSelector(cfg benchConfig) (selector, error) {
	opts := []topk.Option{topk.WithPreallocate(cfg.k)}
	if cfg.largest {
		opts = append(opts, topk.WithLargest())
	}
	if cfg.stable {
		opts = append(opts, topk.WithStable())
	}
	if cfg.unique {
		return topk.NewUnique[uint64](cfg.k, opts...)
	}
	return topk.New[uint64](cfg.k, opts...)
}

// valueAt derives the i-th workload value for a seed. The murmur3 variant
// exists to cross-check that throughput is not an artifact of one hash's
// output distribution.
func valueAt(cfg benchConfig, seed, i uint64) uint64 {
	if cfg.replay != nil {
		off := (i % uint64(len(cfg.replay)/8)) * 8
		return binary.LittleEndian.Uint64(cfg.replay[off : off+8])
	}
	var v uint64
	if cfg.hash == "murmur3" {
		var buf [16]byte
		binary.LittleEndian.PutUint64(buf[:8], seed)
		binary.LittleEndian.PutUint64(buf[8:], i)
		v = murmur3.Sum64(buf[:])
	} else {
		v = wload.U64(seed, i)
	}
	if cfg.keyspace > 0 {
		v = wload.Bounded(v, cfg.keyspace)
	}
	return v
}

func runOne(cfg benchConfig, seed uint64) (benchResult, error) {
	sel, err := newSelector(cfg)
	if err != nil {
		return benchResult{}, err
	}

	start := time.Now()
	for i := range uint64(cfg.items) {
		sel.Insert(valueAt(cfg, seed, i))
	}
	res := benchResult{
		insertTime: time.Since(start),
		attempts:   sel.TotalAttempts(),
		resident:   sel.Len(),
	}

	start = time.Now()
	for v := range sel.Drain() {
		res.checksum ^= v
	}
	res.drainTime = time.Since(start)
	return res, nil
}

func main() {
	itemsFlag := flag.Int("items", 10_000_000, "number of values to stream")
	kFlag := flag.Int("k", 1000, "selector capacity")
	largestFlag := flag.Bool("largest", false, "keep the K largest values")
	uniqueFlag := flag.Bool("unique", false, "deduplicate by value")
	stableFlag := flag.Bool("stable", false, "enable arrival-order tie-breaking")
	keyspaceFlag := flag.Uint64("keyspace", 0, "map values into [0, n) to control duplicate rate (0 = off)")
	hashFlag := flag.String("hash", "xxhash", "value derivation hash: xxhash or murmur3")
	inputFlag := flag.String("input", "", "replay little-endian uint64 samples from this file")
	parallelFlag := flag.Int("parallel", 1, "independent concurrent copies of the workload")
	seedFlag := flag.Uint64("seed", 1, "base seed for value derivation")
	cpuprofileFlag := flag.String("cpuprofile", "", "write CPU profile to file")
	flag.Parse()

	if *hashFlag != "xxhash" && *hashFlag != "murmur3" {
		fmt.Fprintf(os.Stderr, "unknown -hash %q (want xxhash or murmur3)\n", *hashFlag)
		os.Exit(1)
	}

	cfg := benchConfig{
		items:    *itemsFlag,
		k:        *kFlag,
		largest:  *largestFlag,
		unique:   *uniqueFlag,
		stable:   *stableFlag,
		keyspace: *keyspaceFlag,
		hash:     *hashFlag,
		seed:     *seedFlag,
	}

	if *inputFlag != "" {
		f, err := os.Open(*inputFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open replay file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mmap replay file: %v\n", err)
			os.Exit(1)
		}
		defer m.Unmap()
		if len(m) < 8 {
			fmt.Fprintln(os.Stderr, "replay file holds no complete uint64 samples")
			os.Exit(1)
		}
		cfg.replay = m
		fmt.Printf("replaying %d samples from %s\n", len(m)/8, *inputFlag)
	}

	if *cpuprofileFlag != "" {
		f, err := os.Create(*cpuprofileFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create profile: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start profile: %v\n", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	fmt.Printf("items=%d k=%d largest=%v unique=%v stable=%v keyspace=%d hash=%s parallel=%d\n",
		cfg.items, cfg.k, cfg.largest, cfg.unique, cfg.stable, cfg.keyspace, cfg.hash, *parallelFlag)

	// Each worker owns its selector outright; the only shared state is the
	// read-only replay mapping.
	results := make([]benchResult, *parallelFlag)
	wall := time.Now()
	var g errgroup.Group
	for w := range *parallelFlag {
		g.Go(func() error {
			var err error
			results[w], err = runOne(cfg, cfg.seed+uint64(w))
			return err
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(os.Stderr, "bench failed: %v\n", err)
		os.Exit(1)
	}
	wallTime := time.Since(wall)

	var attempts uint64
	var insertTotal, drainTotal time.Duration
	for w, r := range results {
		attempts += r.attempts
		insertTotal += r.insertTime
		drainTotal += r.drainTime
		rate := float64(r.attempts) / r.insertTime.Seconds()
		fmt.Printf("worker %d: attempts=%d resident=%d insert=%s (%.2fM items/s) drain=%s checksum=%016x\n",
			w, r.attempts, r.resident, r.insertTime.Round(time.Millisecond), rate/1e6,
			r.drainTime.Round(time.Microsecond), r.checksum)
	}
	fmt.Printf("total: attempts=%d wall=%s aggregate=%.2fM items/s\n",
		attempts, wallTime.Round(time.Millisecond), float64(attempts)/wallTime.Seconds()/1e6)
	if rss := getMaxRSS(); rss > 0 {
		fmt.Printf("peak RSS: %.1f MiB\n", float64(rss)/(1<<20))
	}
}
