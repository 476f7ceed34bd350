package car

// PathsumStats carries an advisory bandwidth metric (total bytes
// recomputed). It has no bearing on correctness.
type PathsumStats struct {
	CellsRecomputed int
	BytesRecomputed int
}

func min3(a, b, c int32) int32 {
	if b <= a && b <= c {
		return b
	}
	if a <= c {
		return a
	}
	return c
}

// computePathsumRow fills pathsum cells [j0, j0+n) of row i from the
// already-valid row i-1, following the cumulative-minimum recurrence (edges
// treated as if the missing neighbor equaled the center). Row 0 is a
// straight copy of energy.
func computePathsumRow(energy, pathsum *Buffer[enval], width, i, j0, n int) {
	if i == 0 {
		for j := j0; j < j0+n; j++ {
			pathsum.Set(0, j, energy.At(0, j))
		}
		return
	}

	j1 := j0 + n
	for j := j0; j < j1; j++ {
		cc := pathsum.At(i-1, j)
		var left, right int32
		if j > 0 {
			left = pathsum.At(i-1, j-1)
		} else {
			left = cc
		}
		if j < width-1 {
			right = pathsum.At(i-1, j+1)
		} else {
			right = cc
		}
		pathsum.Set(i, j, energy.At(i, j)+min3(left, cc, right))
	}
}

// PathsumFull computes the full cumulative minimum path-sum map from energy.
// energy and pathsum must not alias.
func PathsumFull(energy, pathsum *Buffer[enval]) PathsumStats {
	h, w := energy.Height(), energy.Width()
	for i := 0; i < h; i++ {
		computePathsumRow(energy, pathsum, w, i, 0, w)
	}
	return PathsumStats{CellsRecomputed: h * w, BytesRecomputed: h * w * 4}
}

// PathsumPartial recomputes only the cells transitively invalidated by the
// most recently removed seam, maintaining a monotonically widening column
// cone per row. Each row's cone also takes in the eight-column window that
// EnergyPartial rewrote on that row (row 0 included), since those cells
// have new energy. Precondition: the same invariants as EnergyPartial — energy has
// already been brought up to date and pathsum held valid values computed
// with the same seam history.
func PathsumPartial(energy, pathsum *Buffer[enval], removed SeamIndex) PathsumStats {
	h, w := energy.Height(), energy.Width()

	j0, j1 := w, 0
	cells := 0
	for i := 0; i < h; i++ {
		if i > 0 {
			j0 = minInt(j0, maxInt(removed[i-1]-1, 0))
			j1 = maxInt(j1, minInt(removed[i-1]+1, w))
		}
		// Same window as EnergyPartial: removed[i]-3 .. removed[i]+4.
		j0 = minInt(j0, maxInt(removed[i]-3, 0))
		j1 = maxInt(j1, minInt(removed[i]+5, w))

		computePathsumRow(energy, pathsum, w, i, j0, j1-j0)
		cells += j1 - j0

		if j0 > 0 {
			j0--
		}
		if j1 < w {
			j1++
		}
	}
	return PathsumStats{CellsRecomputed: cells, BytesRecomputed: cells * 4}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
