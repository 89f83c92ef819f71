//go:build linux

package main

import "golang.org/x/sys/unix"

// getMaxRSS returns the peak resident set size in bytes, or 0 if rusage is
// unavailable. Linux reports Maxrss in kilobytes.
func getMaxRSS() uint64 {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return uint64(ru.Maxrss) * 1024
}
