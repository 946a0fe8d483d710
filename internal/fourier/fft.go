// Package fourier implements the Fourier clamp stage (C7): a power-of-two
// resize, a 2D Cooley-Tukey FFT, a Butterworth-shaped radial frequency
// filter, and the inverse transform back to spatial pixels.
package fourier

import "math"

// NextPow2 returns the smallest power of two >= n (minimum 1).
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// fft1D runs an in-place iterative decimation-in-time Cooley-Tukey FFT (or
// its inverse) on re/im, whose length must be a power of two.
func fft1D(re, im []float64, invert bool) {
	n := len(re)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			re[i], re[j] = re[j], re[i]
			im[i], im[j] = im[j], im[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wr, wi := math.Cos(ang), math.Sin(ang)
		for start := 0; start < n; start += length {
			curWr, curWi := 1.0, 0.0
			half := length / 2
			for k := 0; k < half; k++ {
				uRe, uIm := re[start+k], im[start+k]
				vRe := re[start+k+half]*curWr - im[start+k+half]*curWi
				vIm := re[start+k+half]*curWi + im[start+k+half]*curWr
				re[start+k] = uRe + vRe
				im[start+k] = uIm + vIm
				re[start+k+half] = uRe - vRe
				im[start+k+half] = uIm - vIm
				nextWr := curWr*wr - curWi*wi
				nextWi := curWr*wi + curWi*wr
				curWr, curWi = nextWr, nextWi
			}
		}
	}

	if invert {
		for i := range re {
			re[i] /= float64(n)
			im[i] /= float64(n)
		}
	}
}

// FFT2D runs a row-then-column 2D FFT (or inverse) in place over a
// width x height complex buffer. Both width and height must be powers of
// two.
func FFT2D(re, im []float64, width, height int, invert bool) {
	rowRe := make([]float64, width)
	rowIm := make([]float64, width)
	for y := 0; y < height; y++ {
		copy(rowRe, re[y*width:(y+1)*width])
		copy(rowIm, im[y*width:(y+1)*width])
		fft1D(rowRe, rowIm, invert)
		copy(re[y*width:(y+1)*width], rowRe)
		copy(im[y*width:(y+1)*width], rowIm)
	}

	colRe := make([]float64, height)
	colIm := make([]float64, height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			colRe[y] = re[y*width+x]
			colIm[y] = im[y*width+x]
		}
		fft1D(colRe, colIm, invert)
		for y := 0; y < height; y++ {
			re[y*width+x] = colRe[y]
			im[y*width+x] = colIm[y]
		}
	}
}
