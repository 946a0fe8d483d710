package erosion

// RGBAImage is a row-major RGBA8 pixel buffer. It backs pushed source
// frames, the timing map, and each slice of the gradient volume. Adapted
// from the library's Pixmap type, trimmed to the single RGBA8 format the
// pipeline ever produces or consumes (no premultiplication cache, no
// image.Image interop: the core never touches the standard image package).
type RGBAImage struct {
	width  int
	height int
	data   []uint8 // 4 bytes per pixel, row-major
}

// NewRGBAImage allocates a zeroed width x height RGBA8 buffer.
func NewRGBAImage(width, height int) *RGBAImage {
	return &RGBAImage{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// WrapRGBAImage builds an RGBAImage view over existing bytes without
// copying. The caller guarantees len(data) == width*height*4.
func WrapRGBAImage(data []uint8, width, height int) *RGBAImage {
	return &RGBAImage{width: width, height: height, data: data}
}

func (p *RGBAImage) Width() int  { return p.width }
func (p *RGBAImage) Height() int { return p.height }

// Bytes returns the raw RGBA8 pixel data.
func (p *RGBAImage) Bytes() []uint8 { return p.data }

func (p *RGBAImage) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// At returns the raw RGBA8 bytes of a pixel. Out-of-bounds coordinates
// return zero.
func (p *RGBAImage) At(x, y int) (r, g, b, a uint8) {
	if !p.inBounds(x, y) {
		return 0, 0, 0, 0
	}
	i := (y*p.width + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// Set writes a pixel's raw RGBA8 bytes. Out-of-bounds writes are ignored.
func (p *RGBAImage) Set(x, y int, r, g, b, a uint8) {
	if !p.inBounds(x, y) {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = r, g, b, a
}

// SetColor writes a pixel from a float RGBA color, clamping and rounding.
func (p *RGBAImage) SetColor(x, y int, c RGBA) {
	b := c.Bytes()
	p.Set(x, y, b[0], b[1], b[2], b[3])
}

// Clear fills the entire buffer with a solid color.
func (p *RGBAImage) Clear(c RGBA) {
	b := c.Bytes()
	for i := 0; i < len(p.data); i += 4 {
		p.data[i], p.data[i+1], p.data[i+2], p.data[i+3] = b[0], b[1], b[2], b[3]
	}
}

// Clone returns a deep copy of the buffer.
func (p *RGBAImage) Clone() *RGBAImage {
	cp := make([]uint8, len(p.data))
	copy(cp, p.data)
	return &RGBAImage{width: p.width, height: p.height, data: cp}
}
