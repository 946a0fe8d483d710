package fourier

// Resize upsamples a single uint8 channel to the next power-of-two size in
// each axis using bilinear interpolation. It also returns an auxiliary
// mask the same size as the output: 0 where a destination pixel maps
// exactly onto one integer-valued source pixel (preserved unchanged), 255
// where it was blended from more than one (interpolated).
func Resize(src []uint8, width, height int) (dst []uint8, newWidth, newHeight int, interpolated []uint8) {
	newWidth = NextPow2(width)
	newHeight = NextPow2(height)
	dst = make([]uint8, newWidth*newHeight)
	interpolated = make([]uint8, newWidth*newHeight)

	if newWidth == width && newHeight == height {
		copy(dst, src)
		return dst, newWidth, newHeight, interpolated
	}

	sx := float64(width) / float64(newWidth)
	sy := float64(height) / float64(newHeight)

	for y := 0; y < newHeight; y++ {
		fy := (float64(y)+0.5)*sy - 0.5
		if fy < 0 {
			fy = 0
		}
		y0 := int(fy)
		y1 := y0 + 1
		if y1 >= height {
			y1 = height - 1
		}
		ty := fy - float64(y0)

		for x := 0; x < newWidth; x++ {
			fx := (float64(x)+0.5)*sx - 0.5
			if fx < 0 {
				fx = 0
			}
			x0 := int(fx)
			x1 := x0 + 1
			if x1 >= width {
				x1 = width - 1
			}
			tx := fx - float64(x0)

			p00 := float64(src[y0*width+x0])
			p10 := float64(src[y0*width+x1])
			p01 := float64(src[y1*width+x0])
			p11 := float64(src[y1*width+x1])

			top := p00 + (p10-p00)*tx
			bottom := p01 + (p11-p01)*tx
			v := top + (bottom-top)*ty

			i := y*newWidth + x
			dst[i] = uint8(v + 0.5)
			if (x0 != x1 && tx > 0) || (y0 != y1 && ty > 0) {
				interpolated[i] = 255
			}
		}
	}
	return dst, newWidth, newHeight, interpolated
}

// butterworth returns the 4th-order Butterworth low-pass weight for a
// pixel at (x, y) in a width x height frequency-domain buffer, using
// wrap-around radial frequency and the given cutoff ratio of Nyquist.
// When highPass is true the shape is inverted (1 - filter).
func butterworth(x, y, width, height int, cutoffRatio float64, highPass bool) float64 {
	fx := float64(x)
	if x > width/2 {
		fx = float64(width - x)
	}
	fy := float64(y)
	if y > height/2 {
		fy = float64(height - y)
	}
	cx := float64(width) * cutoffRatio / 2
	cy := float64(height) * cutoffRatio / 2
	if cx == 0 {
		cx = 1e-9
	}
	if cy == 0 {
		cy = 1e-9
	}
	rx := fx / cx
	ry := fy / cy
	d2 := rx*rx + ry*ry
	filter := 1 / (1 + d2*d2)
	if highPass {
		filter = 1 - filter
	}
	return filter
}

// Clamp runs the full C7 pipeline over one uint8 channel of size
// origWidth x origHeight: resize to the next power of two, forward FFT,
// apply a Butterworth radial filter, inverse FFT, clamp to [0,255], and
// sample back down to the original extent (each original pixel reads the
// resized pixel nearest its centre).
func Clamp(channel []uint8, origWidth, origHeight int, cutoffRatio float64, highPass bool) []uint8 {
	resized, w, h, _ := Resize(channel, origWidth, origHeight)

	re := make([]float64, w*h)
	im := make([]float64, w*h)
	for i, v := range resized {
		re[i] = float64(v)
	}

	FFT2D(re, im, w, h, false)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			f := butterworth(x, y, w, h, cutoffRatio, highPass)
			re[i] *= f
			im[i] *= f
		}
	}

	FFT2D(re, im, w, h, true)

	amplify := 1.0
	if highPass {
		amplify = 9.0
	}

	out := make([]uint8, origWidth*origHeight)
	for y := 0; y < origHeight; y++ {
		ry := int((float64(y) + 0.5) * float64(h) / float64(origHeight))
		for x := 0; x < origWidth; x++ {
			rx := int((float64(x) + 0.5) * float64(w) / float64(origWidth))
			v := re[ry*w+rx] * amplify
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			out[y*origWidth+x] = uint8(v + 0.5)
		}
	}
	return out
}
