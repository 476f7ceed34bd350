package car

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomPathsum(r *rand.Rand, w, h int) *Buffer[enval] {
	energy := NewBuffer[enval](w, h)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			energy.Set(i, j, enval(r.Intn(256)))
		}
	}
	pathsum := NewBuffer[enval](w, h)
	PathsumFull(energy, pathsum)
	return pathsum
}

func TestFindSeamIsEightConnected(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	w, h := 24, 16
	pathsum := randomPathsum(r, w, h)

	seam := NewSeamIndex(h)
	FindSeam(pathsum, seam)

	for i := 0; i < h; i++ {
		assert.GreaterOrEqual(t, seam[i], 0)
		assert.Less(t, seam[i], w)
	}
	for i := 1; i < h; i++ {
		diff := seam[i] - seam[i-1]
		assert.LessOrEqual(t, diff, 1)
		assert.GreaterOrEqual(t, diff, -1)
	}
}

func TestFindSeamHasOneEntryPerRow(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	w, h := 10, 7
	pathsum := randomPathsum(r, w, h)

	seam := NewSeamIndex(h)
	FindSeam(pathsum, seam)

	assert.Len(t, seam, h)
}

func TestFindSeamIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	w, h := 18, 11
	pathsum := randomPathsum(r, w, h)

	a := NewSeamIndex(h)
	b := NewSeamIndex(h)
	FindSeam(pathsum, a)
	FindSeam(pathsum, b)

	assert.Equal(t, []int(a), []int(b))
}

func TestFindSeamBreaksTiesTowardCenterThenLeft(t *testing.T) {
	// Three equal-cost neighbors above the traced point: center must win.
	w, h := 3, 2
	pathsum := NewBuffer[enval](w, h)
	pathsum.Set(0, 0, 4)
	pathsum.Set(0, 1, 4)
	pathsum.Set(0, 2, 4)
	pathsum.Set(1, 0, 9)
	pathsum.Set(1, 1, 1) // unique minimum on the last row
	pathsum.Set(1, 2, 9)

	seam := NewSeamIndex(h)
	FindSeam(pathsum, seam)

	assert.Equal(t, 1, seam[1])
	assert.Equal(t, 1, seam[0], "equal-cost neighbors must resolve to the center column")
}

func TestFindSeamCostEqualsPathsumMinimum(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	w, h := 22, 13
	energy := NewBuffer[enval](w, h)
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			energy.Set(i, j, enval(r.Intn(256)))
		}
	}
	pathsum := NewBuffer[enval](w, h)
	PathsumFull(energy, pathsum)

	seam := NewSeamIndex(h)
	FindSeam(pathsum, seam)

	var cost enval
	for i := 0; i < h; i++ {
		cost += energy.At(i, seam[i])
	}

	var minLast enval = pathsum.At(h-1, 0)
	for j := 1; j < w; j++ {
		if v := pathsum.At(h-1, j); v < minLast {
			minLast = v
		}
	}

	assert.Equal(t, minLast, pathsum.At(h-1, seam[h-1]))
	assert.Equal(t, minLast, cost)
}

func TestFindSeamPrefersLeftOverRightOnTie(t *testing.T) {
	w, h := 3, 2
	pathsum := NewBuffer[enval](w, h)
	pathsum.Set(0, 0, 4) // left neighbor, tied with right
	pathsum.Set(0, 1, 9) // center, strictly worse
	pathsum.Set(0, 2, 4) // right neighbor, tied with left
	pathsum.Set(1, 0, 9)
	pathsum.Set(1, 1, 1)
	pathsum.Set(1, 2, 9)

	seam := NewSeamIndex(h)
	FindSeam(pathsum, seam)

	assert.Equal(t, 1, seam[1])
	assert.Equal(t, 0, seam[0], "tied left/right neighbors must resolve to the left column")
}
