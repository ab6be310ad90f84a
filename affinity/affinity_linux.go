//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity via
// sched_setaffinity on the calling thread. Pure Go, no cgo.

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// setAffinityPlatform sets thread affinity to a given CPU for Linux.
func setAffinityPlatform(cpuID int) error {
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: sched_setaffinity(cpu %d) failed: %w", cpuID, err)
	}
	return nil
}
