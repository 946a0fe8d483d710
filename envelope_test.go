package erosion

import "testing"

func runTracker(alphas []uint8, opts *Options) *pixelTracker {
	p := &pixelTracker{}
	for f, a := range alphas {
		p.step(a, f, opts)
	}
	p.flush(len(alphas), opts)
	return p
}

func TestEnvelope_SinglePulse(t *testing.T) {
	// S1: alpha sequence [0, 50, 200, 200, 100, 0, 0, 0].
	opts := DefaultOptions()
	p := runTracker([]uint8{0, 50, 200, 200, 100, 0, 0, 0}, &opts)

	if p.best == nil {
		t.Fatal("expected a best envelope")
	}
	if p.best.attackStart != 1 || p.best.attackEnd != 2 {
		t.Errorf("attack span = [%d,%d], want [1,2]", p.best.attackStart, p.best.attackEnd)
	}
	if p.best.releaseStart != 4 {
		t.Errorf("releaseStart = %d, want 4", p.best.releaseStart)
	}
	if p.best.maxAlpha != 200 {
		t.Errorf("maxAlpha = %d, want 200", p.best.maxAlpha)
	}
}

func TestEnvelope_NoiseRejection(t *testing.T) {
	// S4: alpha = [0, 30, 0, 0, 0], below NOISE_ALPHA(32) and too short.
	opts := DefaultOptions()
	p := runTracker([]uint8{0, 30, 0, 0, 0}, &opts)
	if p.best != nil {
		t.Errorf("expected no best envelope, got %+v", p.best)
	}
}

func TestEnvelope_Ripple(t *testing.T) {
	// S5: alpha = [0, 200, 180, 220, 50, 0]; the mid-release rebound must
	// fold back into the same envelope (max=220), not start a new one.
	opts := DefaultOptions()
	opts.NoiseFrames = 1 // scenario only spans 6 frames; relax noise gate to exercise it
	p := runTracker([]uint8{0, 200, 180, 220, 50, 0}, &opts)

	if p.best == nil {
		t.Fatal("expected a best envelope")
	}
	if p.best.maxAlpha != 220 {
		t.Errorf("maxAlpha = %d, want 220 (single envelope absorbing the ripple)", p.best.maxAlpha)
	}
	if p.best.attackEnd != 3 {
		t.Errorf("attackEnd = %d, want 3", p.best.attackEnd)
	}
}

func TestEnvelope_Monotonicity(t *testing.T) {
	// Invariant 1: attack_start <= attack_end <= release_start <= release_end.
	opts := DefaultOptions()
	opts.NoiseFrames = 0
	opts.NoiseAlpha = 0
	sequences := [][]uint8{
		{0, 10, 50, 200, 150, 90, 0},
		{0, 255, 255, 255, 0, 0},
		{0, 5, 0, 5, 0, 200, 150, 0},
	}
	for i, seq := range sequences {
		p := runTracker(seq, &opts)
		if p.best == nil {
			continue
		}
		e := p.best
		if !(e.attackStart <= e.attackEnd && e.attackEnd <= e.releaseStart && e.releaseStart <= e.releaseEnd) {
			t.Errorf("sequence %d: envelope %+v violates monotonicity", i, e)
		}
	}
}

func TestEnvelope_ZeroAlphaStream(t *testing.T) {
	// S2-equivalent at the tracker level: an all-zero pixel never opens an
	// envelope.
	opts := DefaultOptions()
	p := runTracker([]uint8{0, 0, 0, 0}, &opts)
	if p.best != nil {
		t.Error("all-zero alpha stream must not produce a best envelope")
	}
	if p.state != stateNotIn {
		t.Errorf("state = %v, want stateNotIn", p.state)
	}
}
