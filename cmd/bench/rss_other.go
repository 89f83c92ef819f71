//go:build !linux

package main

// getMaxRSS is unsupported on this platform; the harness skips RSS reporting.
func getMaxRSS() uint64 {
	return 0
}
