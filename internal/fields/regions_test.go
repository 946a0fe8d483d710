package fields

import "testing"

func TestLabelRegions_TwoSquares(t *testing.T) {
	// 4x4 grid, two separate 2x2 blocks of value 5, background -1.
	w, h := 4, 4
	src := make([]int16, w*h)
	for i := range src {
		src[i] = -1
	}
	set := func(x, y int, v int16) { src[y*w+x] = v }
	set(0, 0, 5)
	set(1, 0, 5)
	set(0, 1, 5)
	set(1, 1, 5)
	set(2, 2, 5)
	set(3, 2, 5)
	set(2, 3, 5)
	set(3, 3, 5)

	labels, n := LabelRegions(src, w, h, false)
	if n != 2 {
		t.Fatalf("numRegions = %d, want 2", n)
	}
	if labels[0*w+0] != labels[1*w+1] {
		t.Error("first block should share one label")
	}
	if labels[2*w+2] == labels[0] {
		t.Error("disjoint blocks should not share a label")
	}
	if labels[1*w+3] != 0 { // background (-1) must stay label 0
		t.Errorf("background label = %d, want 0", labels[1*w+3])
	}
}

func TestLabelRegions_AllBackground(t *testing.T) {
	src := []int16{-1, -1, -1, -1}
	labels, n := LabelRegions(src, 2, 2, false)
	if n != 0 {
		t.Errorf("numRegions = %d, want 0", n)
	}
	for _, l := range labels {
		if l != 0 {
			t.Error("all-background image must have no nonzero labels")
		}
	}
}
