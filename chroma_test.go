package erosion

import "testing"

func TestChromaAlpha_ExactKeyMatchIsTransparent(t *testing.T) {
	a := chromaAlpha(0, 255, 0, 255, 0, 255, 0, 255)
	if a != 0 {
		t.Errorf("exact key match: alpha = %d, want 0", a)
	}
}

func TestChromaAlpha_OrthogonalColorStaysOpaque(t *testing.T) {
	a := chromaAlpha(0, 255, 0, 255, 255, 0, 0, 255)
	if a != 255 {
		t.Errorf("red sample against green key: alpha = %d, want 255", a)
	}
}

func TestChromaAlpha_TransparentKeyPassesThrough(t *testing.T) {
	a := chromaAlpha(0, 255, 0, 0, 10, 20, 30, 77)
	if a != 77 {
		t.Errorf("transparent key: alpha = %d, want sample alpha 77 unchanged", a)
	}
}

func TestChromaAlpha_ZeroMagnitudeVectorsForceOpaque(t *testing.T) {
	a := chromaAlpha(0, 0, 0, 255, 0, 0, 0, 200)
	if a != 255 {
		t.Errorf("black key and black sample: alpha = %d, want 255 (forced opaque)", a)
	}
}
