package erosion

import "testing"

func TestBuildTimingMap_NoEnvelopes(t *testing.T) {
	trackers := make([]pixelTracker, 4)
	_, _, err := buildTimingMap(trackers, 2, 2, 4)
	if err != ErrNoEnvelopes {
		t.Fatalf("err = %v, want ErrNoEnvelopes", err)
	}
}

func TestBuildTimingMap_SinglePulse(t *testing.T) {
	// S1, encoded: a single pixel with the S1 envelope should normalize to
	// R=255 (earliest reveal) and G=0 (earliest release), since both spans
	// collapse to a single pixel.
	opts := DefaultOptions()
	p := runTracker([]uint8{0, 50, 200, 200, 100, 0, 0, 0}, &opts)
	trackers := []pixelTracker{*p}

	img, meta, err := buildTimingMap(trackers, 1, 1, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, _, a := img.At(0, 0)
	if r != 255 {
		t.Errorf("R = %d, want 255", r)
	}
	if g != 0 {
		t.Errorf("G = %d, want 0", g)
	}
	if a != 255 {
		t.Errorf("A = %d, want 255", a)
	}
	if meta.FadeInDuration < 0 || meta.FadeInDuration > 1 {
		t.Errorf("FadeInDuration = %v out of [0,1]", meta.FadeInDuration)
	}
	if meta.FadeOutDuration < 0 || meta.FadeOutDuration > 1 {
		t.Errorf("FadeOutDuration = %v out of [0,1]", meta.FadeOutDuration)
	}
}

func TestBuildTimingMap_TwoStaggeredPixels(t *testing.T) {
	// S3: pixel A reveals earlier than pixel B, so A's R must exceed B's R.
	opts := DefaultOptions()
	opts.NoiseFrames = 0
	opts.NoiseAlpha = 0

	a := runTracker([]uint8{0, 255, 255, 0}, &opts)
	b := runTracker([]uint8{0, 0, 255, 255, 0}, &opts)
	trackers := []pixelTracker{*a, *b}

	img, _, err := buildTimingMap(trackers, 2, 1, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ra, _, _, _ := img.At(0, 0)
	rb, _, _, _ := img.At(1, 0)
	if ra <= rb {
		t.Errorf("R(A)=%d should exceed R(B)=%d (A reveals earlier)", ra, rb)
	}
}

func TestBuildTimingMap_EncoderRange(t *testing.T) {
	// Invariant 2: R, G in [0,255] is automatic for uint8; check no-best
	// pixels get the documented (0,0,0,255) encoding alongside real ones.
	opts := DefaultOptions()
	opts.NoiseFrames = 0
	opts.NoiseAlpha = 0
	best := runTracker([]uint8{0, 200, 0}, &opts)
	trackers := []pixelTracker{*best, {}}

	img, _, err := buildTimingMap(trackers, 2, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, g, b, a := img.At(1, 0)
	if r != 0 || g != 0 || b != 0 || a != 255 {
		t.Errorf("no-best pixel = (%d,%d,%d,%d), want (0,0,0,255)", r, g, b, a)
	}
}
