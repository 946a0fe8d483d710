package fields

import "testing"

func TestFloodFill_Coverage(t *testing.T) {
	// Invariant 8: every reachable non-masked cell receives a finite value.
	w, h := 5, 5
	seeds := []Seed{{X: 0, Y: 0, Value: 0}}
	values, filled := FloodFill(w, h, seeds, DistanceRule, nil, false)
	for i, f := range filled {
		if !f {
			t.Fatalf("cell %d was never filled", i)
		}
	}
	if values[24] <= 0 {
		t.Errorf("farthest cell value = %v, want > 0", values[24])
	}
}

func TestFloodFill_MaskBlocksFill(t *testing.T) {
	w, h := 3, 3
	mask := []bool{
		true, false, true,
		true, false, true,
		true, true, true,
	}
	seeds := []Seed{{X: 0, Y: 0, Value: 0}}
	_, filled := FloodFill(w, h, seeds, DistanceRule, mask, false)
	if filled[0*w+1] || filled[1*w+1] {
		t.Error("masked-out cells must never be filled")
	}
	if !filled[2*w+2] {
		t.Error("cell reachable around the mask should be filled")
	}
}

func TestFloodFill_MinRuleTakesSeedValue(t *testing.T) {
	w, h := 1, 3
	seeds := []Seed{{X: 0, Y: 0, Value: 10}, {X: 0, Y: 2, Value: 2}}
	values, _ := FloodFill(w, h, seeds, MinRule, nil, false)
	if values[1] != 2 && values[1] != 10 {
		t.Errorf("middle cell = %v, want one of the seed values via MinRule", values[1])
	}
}
