package erosion

import "testing"

func TestRGBA_Bytes(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"black", Black, [4]uint8{0, 0, 0, 255}},
		{"white", White, [4]uint8{255, 255, 255, 255}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
		{"clamps over range", RGBA{1.5, -0.5, 0.5, 1}, [4]uint8{255, 0, 128, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.Bytes()
			if got != tt.want {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBA_Lerp(t *testing.T) {
	a := RGBA{0, 0, 0, 1}
	b := RGBA{1, 1, 1, 1}
	mid := a.Lerp(b, 0.5)
	if mid.R != 0.5 || mid.G != 0.5 || mid.B != 0.5 {
		t.Errorf("Lerp(0.5) = %v, want (0.5,0.5,0.5,1)", mid)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestRGBA_PremultiplyRoundtrip(t *testing.T) {
	c := RGBA{0.8, 0.4, 0.2, 0.5}
	pm := c.Premultiply()
	back := pm.Unpremultiply()
	const eps = 1e-9
	if abs(back.R-c.R) > eps || abs(back.G-c.G) > eps || abs(back.B-c.B) > eps {
		t.Errorf("premultiply roundtrip: got %v, want %v", back, c)
	}
}

func TestRGBA_UnpremultiplyZeroAlpha(t *testing.T) {
	got := RGBA{0.5, 0.5, 0.5, 0}.Unpremultiply()
	if got != (RGBA{}) {
		t.Errorf("Unpremultiply with zero alpha = %v, want zero value", got)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
