package erosion

// Frame is an immutable view of one RGBA8 source image, owned by a
// Pipeline's frame stream. It never outlives the pipeline that produced it.
type Frame struct {
	id     int
	image  *RGBAImage
	delayC int // delay in centiseconds, 0 if unknown/not a GIF source
}

// ID returns the frame's ordered position in the stream, starting at 0.
func (f Frame) ID() int { return f.id }

// Image returns the frame's pixel data.
func (f Frame) Image() *RGBAImage { return f.image }

// DelayCentiseconds returns the GIF-style inter-frame delay, or 0 if the
// source did not supply one.
func (f Frame) DelayCentiseconds() int { return f.delayC }

// At returns the raw RGBA8 bytes of a pixel in this frame.
func (f Frame) At(x, y int) (r, g, b, a uint8) { return f.image.At(x, y) }

// frameStream is a finite, ordered, restartable sequence of frames. It is
// restartable because the gradient builder (C9) rewinds and re-reads every
// frame after the envelope builder (C3) has already consumed them once.
//
// Frames are appended in Pushing state and never mutated afterward, so
// restarting is simply re-iterating the same owned slice; no source
// decoder needs to be re-invoked.
type frameStream struct {
	width, height int
	frames        []Frame
}

func newFrameStream(width, height int) *frameStream {
	return &frameStream{width: width, height: height}
}

// push appends a new frame built from raw RGBA8 bytes, copying into an
// owned buffer so the caller's slice may be reused or discarded.
func (s *frameStream) push(data []uint8, delayCentiseconds int) Frame {
	img := NewRGBAImage(s.width, s.height)
	copy(img.Bytes(), data)
	f := Frame{id: len(s.frames), image: img, delayC: delayCentiseconds}
	s.frames = append(s.frames, f)
	return f
}

// len reports the number of frames pushed so far. The synthetic trailing
// zero frame of FinishPushingFrames is fed to the envelope builder directly
// and is never stored in the stream.
func (s *frameStream) len() int { return len(s.frames) }

// rewind returns every pushed frame in order. Because frames
// are append-only and never mutated, this is simply a fresh view over the
// same owned slice, with no decoder state to reset.
func (s *frameStream) rewind() []Frame { return s.frames }
