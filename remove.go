package car

// RemoveSeam narrows buf by one column in place, using the seam index to
// decide which row segments to shift. It is generic over the buffer's
// element type — the RGB working image, the grayscale image, and the
// energy/path-sum maps all share this single implementation, matching the
// C original's size-parametric remover but using a Go generic instead of a
// byte-granular runtime element_size.
//
// Precondition: len(seam) == buf.Height(), and every seam[i] is a valid
// logical column of buf.
func RemoveSeam[T any](buf *Buffer[T], seam SeamIndex) {
	width, height := buf.width, buf.height
	bufWidth, bufStart := buf.bufWidth, buf.bufStart

	// Mid-band heuristic: bias the memmove toward whichever side of the
	// image moves fewer bytes on average.
	mid := (seam[0] + seam[height-1]) / 2
	rightBiased := mid > width/2

	if rightBiased {
		for i := 0; i < height; i++ {
			rowBase := i*bufWidth + bufStart
			s := seam[i]
			if s+1 < width {
				copy(buf.data[rowBase+s:rowBase+width-1], buf.data[rowBase+s+1:rowBase+width])
			}
		}
	} else {
		for i := 0; i < height; i++ {
			rowBase := i*bufWidth + bufStart
			s := seam[i]
			if s > 0 {
				copy(buf.data[rowBase+1:rowBase+s+1], buf.data[rowBase:rowBase+s])
			}
		}
		buf.bufStart++
	}
	buf.width--
}
