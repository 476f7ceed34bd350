package car

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Sobel kernels, weight-sum 8 each.
var (
	kernelX = [3][3]int32{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
	kernelY = [3][3]int32{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
)

const sobelShift = 4 // divide by 2*kernelMagnitude = 16, as an arithmetic right shift

// EnergyStats carries an advisory performance metric. It has no bearing on
// correctness; callers may ignore it.
type EnergyStats struct {
	PixelsComputed   int
	CyclesPerElement float64
}

func clampInt[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// sobelAt computes the energy of a single pixel using the clamped-window
// scalar reference path. It is correct for every
// pixel, interior or edge.
func sobelAt(gray *Buffer[uint8], height, width, i, j int) int32 {
	i0 := clampInt(i-1, 0, height-3)
	j0 := clampInt(j-1, 0, width-3)

	var gx, gy int32
	for ii := 0; ii < 3; ii++ {
		for jj := 0; jj < 3; jj++ {
			v := int32(gray.At(i0+ii, j0+jj))
			gx += kernelX[ii][jj] * v
			gy += kernelY[ii][jj] * v
		}
	}
	if gx < 0 {
		gx = -gx
	}
	if gy < 0 {
		gy = -gy
	}
	return (gx >> sobelShift) + (gy >> sobelShift)
}

// sobelInterior computes one pixel's energy using an algebraic
// reformulation that shares the (p22-p00) term between the x and y
// responses, the same sharing a vectorized lane would exploit. Only valid
// when the full 3x3 window lies inside the image without clamping, i.e.
// 0 < i < height-1 and 0 < j < width-1.
func sobelInterior(gray *Buffer[uint8], i, j int) int32 {
	p00 := int32(gray.At(i-1, j-1))
	p01 := int32(gray.At(i-1, j))
	p02 := int32(gray.At(i-1, j+1))
	p10 := int32(gray.At(i, j-1))
	p12 := int32(gray.At(i, j+1))
	p20 := int32(gray.At(i+1, j-1))
	p21 := int32(gray.At(i+1, j))
	p22 := int32(gray.At(i+1, j+1))

	diag := p22 - p00
	x := (p21-p01)<<1 + diag + (p20 - p02)
	y := (p12-p10)<<1 + diag + (p02 - p20)
	if x < 0 {
		x = -x
	}
	if y < 0 {
		y = -y
	}
	return (x >> sobelShift) + (y >> sobelShift)
}

// computeEnergyRow fills energy cells [j0, j0+n) of row i. It dispatches to
// the batched interior formulation for the sub-range that qualifies
// (simdAvailable, row strictly interior, columns strictly interior) and
// falls back to the scalar clamped path for every edge cell.
func computeEnergyRow(gray *Buffer[uint8], energy *Buffer[enval], height, width, i, j0, n int) {
	j1 := j0 + n
	interiorRow := simdAvailable && i > 0 && i < height-1

	j := j0
	for ; j < j1; j++ {
		if interiorRow && j > 0 && j < width-1 {
			break
		}
		energy.Set(i, j, sobelAt(gray, height, width, i, j))
	}
	for ; j < j1 && interiorRow && j < width-1; j++ {
		energy.Set(i, j, sobelInterior(gray, i, j))
	}
	for ; j < j1; j++ {
		energy.Set(i, j, sobelAt(gray, height, width, i, j))
	}
}

// EnergyFull computes the gradient-magnitude energy map for every pixel of
// gray, writing into energy. gray and
// energy must not alias.
func EnergyFull(gray *Buffer[uint8], energy *Buffer[enval]) EnergyStats {
	start := time.Now()
	h, w := gray.Height(), gray.Width()
	for i := 0; i < h; i++ {
		computeEnergyRow(gray, energy, h, w, i, 0, w)
	}
	return energyStats(h*w, start)
}

// EnergyPartial recomputes only the energy cells invalidated by the most
// recently removed seam. Precondition:
// gray has already had removed applied to it, and energy held valid values
// for the pre-removal image sharing the same seam history.
func EnergyPartial(gray *Buffer[uint8], energy *Buffer[enval], removed SeamIndex) EnergyStats {
	start := time.Now()
	h, w := gray.Height(), gray.Width()

	const windowRadius = 3 // removed[i]-3 .. removed[i]+4, width 8
	const windowWidth = 8

	total := 0
	for i := 0; i < h; i++ {
		j0 := clampInt(removed[i]-windowRadius, 0, w)
		j1 := clampInt(removed[i]-windowRadius+windowWidth, 0, w)
		if j1 <= j0 {
			continue
		}
		computeEnergyRow(gray, energy, h, w, i, j0, j1-j0)
		total += j1 - j0
	}
	return energyStats(total, start)
}

func energyStats(pixels int, start time.Time) EnergyStats {
	elapsed := time.Since(start)
	stats := EnergyStats{PixelsComputed: pixels}
	if pixels > 0 {
		stats.CyclesPerElement = float64(elapsed.Nanoseconds()) / float64(pixels)
	}
	return stats
}
