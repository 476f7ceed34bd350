//go:build arm64

package car

import "golang.org/x/sys/cpu"

func init() {
	// NEON (ASIMD) gives the same 4-lane 32-bit integer min/sub the batched
	// path needs; it's mandatory on arm64 but we still probe it defensively.
	simdAvailable = cpu.ARM64.HasASIMD
}
