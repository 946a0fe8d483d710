package sdf

import (
	"testing"

	"github.com/gogpu/erosion/internal/fields"
)

func TestInterpolate_FlatRegionStaysAtLevel(t *testing.T) {
	// A uniform 3x3 block of value 5 has no iso-boundary to interpolate
	// toward, so it should resolve close to its own level.
	w, h := 3, 3
	src := make([]int16, w*h)
	for i := range src {
		src[i] = 5
	}
	labels, n := fields.LabelRegions(src, w, h, false)
	out := Interpolate(src, labels, n, w, h)
	for i, v := range out {
		if v < 3 || v > 6 {
			t.Errorf("cell %d = %v, want roughly near level 5", i, v)
		}
	}
}

func TestInterpolate_TransparentStaysZero(t *testing.T) {
	src := []int16{-1, -1, -1, -1}
	labels, n := fields.LabelRegions(src, 2, 2, false)
	out := Interpolate(src, labels, n, 2, 2)
	for _, v := range out {
		if v != 0 {
			t.Errorf("transparent cell = %v, want 0", v)
		}
	}
}

func TestInterpolate_BetweenTwoLevels(t *testing.T) {
	// A 1x4 strip stepping from level 2 to the adjacent level 3 should
	// place the boundary-adjacent pixel within the span of the two levels.
	// (Only V-1 and V+1 boundaries are interpolated toward, so the step must
	// be a single level.)
	w, h := 4, 1
	src := []int16{2, 2, 3, 3}
	labels, n := fields.LabelRegions(src, w, h, false)
	out := Interpolate(src, labels, n, w, h)
	if out[1] < 2 || out[1] > 3 {
		t.Errorf("boundary-adjacent cell = %v, want within [2,3]", out[1])
	}
}
