package erosion

// Options holds every tunable knob for a Pipeline. Construct the defaults
// with DefaultOptions and override individual fields with the With*
// functions, mirroring the functional-options pattern used throughout this
// library's constructors.
type Options struct {
	// NoiseFrames is the minimum envelope length, in frames, an envelope
	// must span to be retained. Envelopes shorter than this are discarded
	// as noise.
	NoiseFrames int

	// NoiseAlpha is the peak-alpha floor for retaining an envelope: an
	// envelope is retained only if its peak alpha exceeds NoiseAlpha.
	NoiseAlpha uint8

	// AlphaThreshold is the alpha floor for entering the ATTACK state.
	AlphaThreshold uint8

	// ChromaKeyFromPixel00, when true, samples the chroma key color from
	// pixel (0,0) of the first pushed frame. When false, the ChromaKey
	// field is used for every frame; set it at construction (WithChromaKey).
	ChromaKeyFromPixel00 bool

	// ChromaKey is the explicit chroma key color, used when
	// ChromaKeyFromPixel00 is false.
	ChromaKey RGBA

	// GradientDepth is 1 for a 2D ramp, or greater than 1 for a 3D cube.
	GradientDepth int

	// GradientWidth and GradientHeight size the gradient volume's (u,v)
	// plane.
	GradientWidth, GradientHeight int

	// MaxBlurIterations is the iteration cap for the smart-blur stage
	// (internal/blur). Pipeline does not run smart blur, so no Pipeline
	// operation reads this field.
	MaxBlurIterations int

	// BlurConvergenceThreshold is the per-iteration change below which the
	// smart-blur stage counts as converged. Like MaxBlurIterations, it is
	// not read by any Pipeline operation.
	BlurConvergenceThreshold float64

	// FourierCutoffRatio is the Butterworth cutoff, as a fraction of the
	// Nyquist frequency, for the Fourier clamp stage (internal/fourier).
	// Pipeline does not run the Fourier clamp, so no Pipeline operation
	// reads this field.
	FourierCutoffRatio float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NoiseFrames:              4,
		NoiseAlpha:               32,
		AlphaThreshold:           4,
		ChromaKeyFromPixel00:     true,
		ChromaKey:                Transparent,
		GradientDepth:            1,
		GradientWidth:            128,
		GradientHeight:           128,
		MaxBlurIterations:        200,
		BlurConvergenceThreshold: 0.01,
		FourierCutoffRatio:       0.3,
	}
}

// Option mutates an Options value. Apply with a Pipeline constructor.
type Option func(*Options)

// WithNoiseFrames overrides NoiseFrames.
func WithNoiseFrames(frames int) Option {
	return func(o *Options) { o.NoiseFrames = frames }
}

// WithNoiseAlpha overrides NoiseAlpha.
func WithNoiseAlpha(alpha uint8) Option {
	return func(o *Options) { o.NoiseAlpha = alpha }
}

// WithAlphaThreshold overrides AlphaThreshold.
func WithAlphaThreshold(alpha uint8) Option {
	return func(o *Options) { o.AlphaThreshold = alpha }
}

// WithChromaKey disables ChromaKeyFromPixel00 and sets an explicit key
// color.
func WithChromaKey(key RGBA) Option {
	return func(o *Options) {
		o.ChromaKeyFromPixel00 = false
		o.ChromaKey = key
	}
}

// WithGradientDepth overrides GradientDepth.
func WithGradientDepth(depth int) Option {
	return func(o *Options) { o.GradientDepth = depth }
}

// WithGradientSize overrides GradientWidth and GradientHeight.
func WithGradientSize(w, h int) Option {
	return func(o *Options) { o.GradientWidth, o.GradientHeight = w, h }
}

// WithMaxBlurIterations overrides MaxBlurIterations.
func WithMaxBlurIterations(n int) Option {
	return func(o *Options) { o.MaxBlurIterations = n }
}

// WithBlurConvergenceThreshold overrides BlurConvergenceThreshold.
func WithBlurConvergenceThreshold(t float64) Option {
	return func(o *Options) { o.BlurConvergenceThreshold = t }
}

// WithFourierCutoffRatio overrides FourierCutoffRatio.
func WithFourierCutoffRatio(r float64) Option {
	return func(o *Options) { o.FourierCutoffRatio = r }
}
