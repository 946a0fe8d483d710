package erosion

import "github.com/gogpu/erosion/internal/parallel"

// Metadata summarizes the global timing bounds recorded while building the
// timing map.
type Metadata struct {
	// FadeInDuration is the attack span across every pixel with a best
	// envelope, as a fraction of total source duration, in [0, 1].
	FadeInDuration float64

	// FadeOutDuration is the release span across every pixel with a best
	// envelope, as a fraction of total source duration, in [0, 1].
	FadeOutDuration float64
}

// encodeBounds collects the cross-pixel extrema the encoder needs to
// normalize R, G and B.
type encodeBounds struct {
	minAttackStart, maxAttackStart int
	minReleaseEnd, maxReleaseEnd   int
	minHardness, maxHardness       float64
	any                            bool
}

func hardness(e *envelope) float64 {
	attackSpan := e.attackEnd - e.attackStart
	if attackSpan < 1 {
		attackSpan = 1
	}
	releaseSpan := e.releaseEnd - e.releaseStart
	if releaseSpan < 1 {
		releaseSpan = 1
	}
	attackSlope := float64(e.maxAlpha) / float64(attackSpan)
	releaseSlope := float64(e.maxAlpha) / float64(releaseSpan)
	if attackSlope < releaseSlope {
		return attackSlope
	}
	return releaseSlope
}

func computeBounds(trackers []pixelTracker) encodeBounds {
	var b encodeBounds
	for i := range trackers {
		e := trackers[i].best
		if e == nil {
			continue
		}
		h := hardness(e)
		if !b.any {
			b.minAttackStart, b.maxAttackStart = e.attackStart, e.attackStart
			b.minReleaseEnd, b.maxReleaseEnd = e.releaseEnd, e.releaseEnd
			b.minHardness, b.maxHardness = h, h
			b.any = true
			continue
		}
		if e.attackStart < b.minAttackStart {
			b.minAttackStart = e.attackStart
		}
		if e.attackStart > b.maxAttackStart {
			b.maxAttackStart = e.attackStart
		}
		if e.releaseEnd < b.minReleaseEnd {
			b.minReleaseEnd = e.releaseEnd
		}
		if e.releaseEnd > b.maxReleaseEnd {
			b.maxReleaseEnd = e.releaseEnd
		}
		if h < b.minHardness {
			b.minHardness = h
		}
		if h > b.maxHardness {
			b.maxHardness = h
		}
	}
	return b
}

func clampSpan(span int) int {
	if span < 1 {
		return 1
	}
	return span
}

// buildTimingMap runs the single reduction pass (C4) over every pixel's
// best envelope, producing the RGBA8 timing map and its metadata. Returns
// ErrNoEnvelopes if no pixel ever produced a best envelope.
func buildTimingMap(trackers []pixelTracker, width, height, totalFrames int) (*RGBAImage, Metadata, error) {
	bounds := computeBounds(trackers)
	if !bounds.any {
		return nil, Metadata{}, ErrNoEnvelopes
	}

	attackSpan := clampSpan(bounds.maxAttackStart - bounds.minAttackStart)
	releaseSpan := clampSpan(bounds.maxReleaseEnd - bounds.minReleaseEnd)
	hardnessSpan := bounds.maxHardness - bounds.minHardness
	if hardnessSpan < 1e-9 {
		hardnessSpan = 1e-9
	}

	out := NewRGBAImage(width, height)
	if totalFrames < 1 {
		totalFrames = 1
	}

	parallel.Rows(height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			base := y * width
			for x := 0; x < width; x++ {
				e := trackers[base+x].best
				if e == nil {
					out.Set(x, y, 0, 0, 0, 255)
					continue
				}
				r := clamp255(255 * (1 - float64(e.attackStart-bounds.minAttackStart)/float64(attackSpan)))
				g := clamp255(255 * float64(e.releaseEnd-bounds.minReleaseEnd) / float64(releaseSpan))
				bb := clamp255(255 * (hardness(e) - bounds.minHardness) / hardnessSpan)
				out.Set(x, y, uint8(r+0.5), uint8(g+0.5), uint8(bb+0.5), 255)
			}
		}
	})

	meta := Metadata{
		FadeInDuration:  float64(attackSpan) / float64(totalFrames),
		FadeOutDuration: float64(releaseSpan) / float64(totalFrames),
	}
	return out, meta, nil
}
