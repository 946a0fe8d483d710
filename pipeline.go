package erosion

// pipelineState is the Pipeline's lifecycle state, per spec.md §4.11:
// Uninitialized -> Pushing -> Encoded -> Gradient(pass k) -> Complete.
type pipelineState uint8

const (
	stateUninitialized pipelineState = iota
	statePushing
	stateEncoded
	stateGradient
	stateComplete
	statePoisoned
)

// ImageKind selects which of a Pipeline's two output images to fetch.
type ImageKind int

const (
	// TimingMap is the RGBA8 erosion/timing texture (R=reveal, G=dissolve,
	// B=edge hardness).
	TimingMap ImageKind = iota
	// GradientVolume is the RGBA8 color-by-reveal-order×lifetime texture.
	GradientVolume
)

// Pipeline owns the frame buffer, envelope state, and output images for one
// analysis run. It is not safe for concurrent use by multiple goroutines:
// like a drawing context, a Pipeline is a single-threaded cooperative
// object whose methods must be called in the documented order.
type Pipeline struct {
	opts Options

	width, height int
	state         pipelineState

	frames   *frameStream
	envelope *envelopeBuilder
	key      RGBA

	timing   *RGBAImage
	meta     Metadata
	gradient *gradientVolume
	gradByte *RGBAImage
	passes   int
}

// NewPipeline allocates a Pipeline for frames of the given size.
func NewPipeline(width, height int, opts ...Option) *Pipeline {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		opts:     o,
		width:    width,
		height:   height,
		state:    statePushing,
		frames:   newFrameStream(width, height),
		envelope: newEnvelopeBuilder(width, height),
		key:      o.ChromaKey,
	}
}

func (p *Pipeline) fail(err error) error {
	Logger().Warn("pipeline entering poisoned state", "error", err)
	p.state = statePoisoned
	return err
}

// PushFrame stores one RGBA8 frame (exactly width*height*4 bytes) and runs
// the chroma-alpha + envelope-builder pass over it immediately.
func (p *Pipeline) PushFrame(data []byte) error {
	if p.state == statePoisoned {
		return ErrPoisoned
	}
	if p.state != statePushing {
		return ErrBadOperationOrder
	}
	if len(data) != p.width*p.height*4 {
		return ErrInvalidFrameSize
	}

	if p.frames.len() == 0 && p.opts.ChromaKeyFromPixel00 {
		r, g, b, a := data[0], data[1], data[2], data[3]
		p.key = RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
	}

	frame := p.frames.push(data, 0)
	p.envelope.pushFrame(frame, p.key, &p.opts)
	Logger().Debug("pushed frame", "frame_id", frame.ID())
	return nil
}

// PushGIFFrame is PushFrame plus a per-frame GIF delay in centiseconds.
func (p *Pipeline) PushGIFFrame(data []byte, delayCentiseconds int) error {
	if p.state == statePoisoned {
		return ErrPoisoned
	}
	if p.state != statePushing {
		return ErrBadOperationOrder
	}
	if len(data) != p.width*p.height*4 {
		return ErrInvalidFrameSize
	}
	if p.frames.len() == 0 && p.opts.ChromaKeyFromPixel00 {
		r, g, b, a := data[0], data[1], data[2], data[3]
		p.key = RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
	}
	frame := p.frames.push(data, delayCentiseconds)
	p.envelope.pushFrame(frame, p.key, &p.opts)
	return nil
}

// FinishPushingFrames flushes every pixel's envelope with a synthetic
// trailing zero frame and builds the timing map. Returns ErrZeroFrames if
// no frames were ever pushed, or ErrNoEnvelopes if no pixel produced a
// qualifying envelope.
func (p *Pipeline) FinishPushingFrames() error {
	if p.state == statePoisoned {
		return ErrPoisoned
	}
	if p.state != statePushing {
		return ErrBadOperationOrder
	}
	total := p.frames.len()
	if total == 0 {
		return p.fail(ErrZeroFrames)
	}

	p.envelope.finish(total, &p.opts)
	if !p.envelope.anyBest() {
		return ErrNoEnvelopes
	}

	timing, meta, err := buildTimingMap(p.envelope.trackers, p.width, p.height, total)
	if err != nil {
		return err
	}
	p.timing = timing
	p.meta = meta
	p.gradient = newGradientVolume(p.opts.GradientWidth, p.opts.GradientHeight, p.opts.GradientDepth)
	p.state = stateEncoded
	Logger().Info("pipeline encoded", "fade_in", meta.FadeInDuration, "fade_out", meta.FadeOutDuration)
	return nil
}

// ComputeGradient runs one more reverse-splat gradient pass (C9). The
// first call accumulates from scratch; the second refines against the
// first (see DESIGN.md's resolution of the "second gradient pass" open
// question); the final gradient bytes are hole-filled (C10) as soon as two
// passes have run. Calls beyond the second are idempotent no-ops.
func (p *Pipeline) ComputeGradient() error {
	if p.state == statePoisoned {
		return ErrPoisoned
	}
	if p.state != stateEncoded && p.state != stateGradient && p.state != stateComplete {
		return ErrBadOperationOrder
	}

	if p.passes >= 2 {
		p.state = stateComplete
		return nil
	}

	fresh := accumulatePass(p.frames.rewind()[:p.frames.len()], p.timing, p.meta, &p.opts)
	if p.passes == 0 {
		p.gradient = fresh
	} else {
		p.gradient.refine(fresh)
	}
	p.passes++
	p.state = stateGradient
	Logger().Info("gradient pass complete", "pass", p.passes)

	if p.passes == 2 {
		p.gradient.holeFill(128)
		p.gradByte = p.gradient.emitBytes()
		p.state = stateComplete
	}
	return nil
}

// Metadata returns the fade-in/fade-out duration fractions computed at
// FinishPushingFrames.
func (p *Pipeline) Metadata() Metadata { return p.meta }

// Image returns the timing map or the gradient volume. The gradient volume
// is nil until ComputeGradient has completed its second pass.
func (p *Pipeline) Image(kind ImageKind) *RGBAImage {
	switch kind {
	case TimingMap:
		return p.timing
	case GradientVolume:
		return p.gradByte
	default:
		return nil
	}
}

// Shutdown releases the pipeline's buffers. It is the only operation valid
// after the pipeline has entered the poisoned state.
func (p *Pipeline) Shutdown() {
	p.frames = nil
	p.envelope = nil
	p.timing = nil
	p.gradient = nil
	p.gradByte = nil
	p.state = stateUninitialized
}
