package car

import "fmt"

// RGBPixel is three independent 8-bit channels, matching the C original's
// rgb_pixel (red, green, blue — no alpha, no padding).
type RGBPixel struct {
	R, G, B uint8
}

// enval is the element type of the energy and path-sum maps. It is signed
// because the Sobel intermediate is signed and the batched Sobel path
// subtracts in signed lanes, even though every stored value is >= 0.
type enval = int32

// Buffer is a row-major image buffer generic over its element type T. It
// distinguishes logical dimensions (width, height) — what the algorithm
// currently sees — from physical dimensions (bufWidth, bufHeight) — the
// backing allocation, which never shrinks. bufStart is the column offset
// into each physical row where the logical image currently begins.
//
// This keeps the "buf_start / buf_width" layout the C original uses to
// avoid reallocating on every seam removal, encapsulated behind At/Set so
// callers never see the offset directly.
type Buffer[T any] struct {
	width, height       int
	bufWidth, bufHeight int
	bufStart            int
	data                []T
}

// NewBuffer allocates a buffer whose physical dimensions equal its initial
// logical dimensions.
func NewBuffer[T any](width, height int) *Buffer[T] {
	return &Buffer[T]{
		width:     width,
		height:    height,
		bufWidth:  width,
		bufHeight: height,
		bufStart:  0,
		data:      make([]T, width*height),
	}
}

// Width is the current logical width.
func (b *Buffer[T]) Width() int { return b.width }

// Height is the current logical height.
func (b *Buffer[T]) Height() int { return b.height }

// index computes the physical offset for a logical (row, col) pair.
func (b *Buffer[T]) index(row, col int) int {
	return row*b.bufWidth + col + b.bufStart
}

// At returns the element at logical (row, col).
func (b *Buffer[T]) At(row, col int) T {
	return b.data[b.index(row, col)]
}

// Set stores v at logical (row, col).
func (b *Buffer[T]) Set(row, col int, v T) {
	b.data[b.index(row, col)] = v
}

// row returns the backing slice for the given logical row, from column 0
// through width-1 in logical coordinates. Used by kernels that want to walk
// a row without recomputing the offset per element.
func (b *Buffer[T]) row(r int) []T {
	start := b.index(r, 0)
	return b.data[start : start+b.width]
}

// checkInvariants validates that width/height/bufStart stay inside the
// physical allocation. Kept as a plain function (not t.Helper-gated) so it
// can be used from both tests and non-test call sites.
func (b *Buffer[T]) checkInvariants() error {
	if b.data == nil {
		return fmt.Errorf("car: buffer has nil backing storage")
	}
	if b.width <= 0 || b.width > b.bufWidth {
		return fmt.Errorf("car: width %d out of range (0, %d]", b.width, b.bufWidth)
	}
	if b.height <= 0 || b.height > b.bufHeight {
		return fmt.Errorf("car: height %d out of range (0, %d]", b.height, b.bufHeight)
	}
	if b.bufStart >= b.bufWidth {
		return fmt.Errorf("car: bufStart %d must be < bufWidth %d", b.bufStart, b.bufWidth)
	}
	if b.bufStart+b.width > b.bufWidth {
		return fmt.Errorf("car: bufStart+width (%d) exceeds bufWidth %d", b.bufStart+b.width, b.bufWidth)
	}
	return nil
}
