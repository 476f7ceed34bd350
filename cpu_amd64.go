//go:build amd64

package car

import "golang.org/x/sys/cpu"

func init() {
	// AVX2 is the instruction set the batched Sobel reformulation in
	// energy.go was written against (8-lane 32-bit integer sub/abs). A
	// CPU without it still runs correctly through the scalar path.
	simdAvailable = cpu.X86.HasAVX2
}
