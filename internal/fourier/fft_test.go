package fourier

import (
	"math"
	"testing"
)

func TestFFT2D_RoundTrip(t *testing.T) {
	// Invariant 5: inverse(forward(x)) must deviate from x by <= 1e-4 per
	// sample when no filter is applied.
	w, h := 8, 8
	re := make([]float64, w*h)
	im := make([]float64, w*h)
	for i := range re {
		re[i] = float64((i*37 + 5) % 251)
	}
	orig := append([]float64(nil), re...)

	FFT2D(re, im, w, h, false)
	FFT2D(re, im, w, h, true)

	for i := range re {
		if math.Abs(re[i]-orig[i]) > 1e-4 {
			t.Errorf("cell %d: got %v, want %v (within 1e-4)", i, re[i], orig[i])
		}
		if math.Abs(im[i]) > 1e-4 {
			t.Errorf("cell %d: residual imaginary part %v, want ~0", i, im[i])
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 8: 8, 9: 16, 100: 128}
	for in, want := range cases {
		if got := NextPow2(in); got != want {
			t.Errorf("NextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestResize_ExactVsInterpolated(t *testing.T) {
	// A 4x4 source is already a power of two: resize must be a no-op copy
	// with every destination pixel marked exact (not interpolated).
	src := make([]uint8, 16)
	for i := range src {
		src[i] = uint8(i * 10)
	}
	dst, w, h, interp := Resize(src, 4, 4)
	if w != 4 || h != 4 {
		t.Fatalf("size = (%d,%d), want (4,4)", w, h)
	}
	for i, v := range dst {
		if v != src[i] {
			t.Errorf("pixel %d = %d, want %d", i, v, src[i])
		}
	}
	for i, v := range interp {
		if v != 0 {
			t.Errorf("pixel %d marked interpolated=%d on a no-op resize", i, v)
		}
	}
}

func TestResize_UpsizeMarksInterpolation(t *testing.T) {
	src := []uint8{0, 100, 200, 50, 150, 250}
	_, w, h, interp := Resize(src, 3, 2)
	if w != 4 || h != 2 {
		t.Fatalf("size = (%d,%d), want (4,2)", w, h)
	}
	anyInterp := false
	for _, v := range interp {
		if v == 255 {
			anyInterp = true
		}
	}
	if !anyInterp {
		t.Error("expanding a non-power-of-two image should mark some pixels interpolated")
	}
}

func TestClamp_LowPassSmooths(t *testing.T) {
	w, h := 8, 8
	channel := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				channel[y*w+x] = 255
			}
		}
	}
	out := Clamp(channel, w, h, 0.3, false)
	if len(out) != w*h {
		t.Fatalf("output length = %d, want %d", len(out), w*h)
	}
	// A checkerboard is high-frequency; low-pass output should be far less
	// extreme than the hard 0/255 input almost everywhere.
	var extremeCount int
	for _, v := range out {
		if v == 0 || v == 255 {
			extremeCount++
		}
	}
	if extremeCount == w*h {
		t.Error("low-pass filter left every pixel at an extreme value")
	}
}
