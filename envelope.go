package erosion

import "github.com/gogpu/erosion/internal/parallel"

// envelopeState is one of the four phases of a per-pixel ADSR-style alpha
// tracker.
type envelopeState uint8

const (
	stateNotIn envelopeState = iota
	stateAttack
	stateSustain
	stateRelease
)

// envelope is a single completed attack/sustain/release span for one
// pixel, retained as the pixel's "best" (highest-area) observation.
type envelope struct {
	attackStart, attackEnd   int
	releaseStart, releaseEnd int
	minAttackAlpha           uint8
	minReleaseAlpha          uint8
	maxAlpha                 uint8
	area                     int64
}

// pixelTracker holds one pixel's in-progress envelope plus its best
// completed envelope so far.
type pixelTracker struct {
	state envelopeState
	cur   envelope
	best  *envelope
}

// step feeds one frame's alpha sample into the tracker, driving the state
// machine described in spec.md §4.3 to completion for this frame (including
// any same-frame re-examination after a fall-through transition) before
// accumulating area.
func (p *pixelTracker) step(alpha uint8, frameIdx int, opts *Options) {
	for p.transition(alpha, frameIdx, opts) {
	}
	if p.state != stateNotIn {
		p.cur.area += int64(alpha)
	}
}

// transition applies one state-machine step and reports whether the same
// alpha sample must be re-examined against the new state (a fall-through,
// e.g. ATTACK plateauing directly into SUSTAIN's own checks).
func (p *pixelTracker) transition(alpha uint8, frameIdx int, opts *Options) bool {
	switch p.state {
	case stateNotIn:
		if alpha > opts.AlphaThreshold {
			p.cur = envelope{
				attackStart:     frameIdx,
				attackEnd:       frameIdx,
				maxAlpha:        alpha,
				minAttackAlpha:  alpha,
				minReleaseAlpha: alpha,
			}
			p.state = stateAttack
		}
		return false

	case stateAttack:
		if alpha > p.cur.maxAlpha {
			p.cur.maxAlpha = alpha
			p.cur.attackEnd = frameIdx
			return false
		}
		p.state = stateSustain
		return true

	case stateSustain:
		switch {
		case alpha > p.cur.maxAlpha:
			p.cur.maxAlpha = alpha
			p.cur.attackEnd = frameIdx
			p.state = stateAttack
			return false
		case alpha < p.cur.maxAlpha:
			p.cur.releaseStart = frameIdx
			p.cur.releaseEnd = frameIdx
			p.cur.minReleaseAlpha = alpha
			p.state = stateRelease
			if alpha == 0 {
				p.finalize(opts)
			}
			return false
		default:
			return false
		}

	case stateRelease:
		switch {
		case alpha == 0:
			p.cur.releaseEnd = frameIdx
			p.finalize(opts)
			return false
		case alpha < p.cur.minReleaseAlpha:
			p.cur.minReleaseAlpha = alpha
			p.cur.releaseEnd = frameIdx
			return false
		case alpha > p.cur.minReleaseAlpha:
			// A rebound above the release floor means the pixel isn't
			// really fading out; fold back into SUSTAIN (which itself
			// routes back to ATTACK if the rebound exceeds the prior
			// peak) and re-examine this same sample there. An envelope
			// that only ever manages a brief, shallow rebound is culled
			// later by finalize's NoiseFrames/NoiseAlpha gate, not here.
			p.state = stateSustain
			return true
		default:
			return false
		}
	}
	return false
}

// finalize closes the current envelope: if it clears the noise thresholds
// and beats the pixel's best-so-far by area, it becomes the new best. The
// current envelope is reset either way.
func (p *pixelTracker) finalize(opts *Options) {
	// NoiseFrames is a minimum qualifying span, not an exclusive floor: a
	// span exactly equal to NoiseFrames still counts (see DESIGN.md Open
	// Question 5's S1 trace, where attackStart=1 and release_end=5 give a
	// span of exactly 4 with the default NoiseFrames=4).
	if p.cur.releaseEnd-p.cur.attackStart >= opts.NoiseFrames && p.cur.maxAlpha > opts.NoiseAlpha {
		if p.best == nil || p.cur.area > p.best.area {
			saved := p.cur
			p.best = &saved
		}
	}
	p.cur = envelope{}
	p.state = stateNotIn
}

// flush feeds the synthetic trailing zero frame that closes any envelope
// still open when the frame stream ends.
func (p *pixelTracker) flush(totalFrames int, opts *Options) {
	p.step(0, totalFrames, opts)
}

// envelopeBuilder owns one pixelTracker per pixel and drives them across
// the frame stream.
type envelopeBuilder struct {
	width, height int
	trackers      []pixelTracker
}

func newEnvelopeBuilder(width, height int) *envelopeBuilder {
	return &envelopeBuilder{
		width:    width,
		height:   height,
		trackers: make([]pixelTracker, width*height),
	}
}

// pushFrame runs the chroma-alpha + envelope-builder pass over one frame,
// tiling rows across goroutines; each row is only ever touched by one
// goroutine, so the result does not depend on scheduling order.
func (b *envelopeBuilder) pushFrame(frame Frame, key RGBA, opts *Options) {
	keyBytes := key.Bytes()
	kr, kg, kb, ka := keyBytes[0], keyBytes[1], keyBytes[2], keyBytes[3]
	img := frame.Image()

	parallel.Rows(b.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			base := y * b.width
			for x := 0; x < b.width; x++ {
				sr, sg, sb, sa := img.At(x, y)
				alpha := chromaAlpha(kr, kg, kb, ka, sr, sg, sb, sa)
				b.trackers[base+x].step(alpha, frame.ID(), opts)
			}
		}
	})
}

// finish flushes every pixel's tracker with the synthetic trailing frame.
func (b *envelopeBuilder) finish(totalFrames int, opts *Options) {
	parallel.Rows(b.height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			base := y * b.width
			for x := 0; x < b.width; x++ {
				b.trackers[base+x].flush(totalFrames, opts)
			}
		}
	})
}

// anyBest reports whether at least one pixel produced a qualifying
// envelope.
func (b *envelopeBuilder) anyBest() bool {
	for i := range b.trackers {
		if b.trackers[i].best != nil {
			return true
		}
	}
	return false
}
