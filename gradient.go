package erosion

import "github.com/gogpu/erosion/internal/color"

// gradCell is one accumulator cell of the gradient volume: weighted color
// sums plus the trilinear basis weight and effective deposit quality used
// to normalize them.
type gradCell struct {
	r, g, b, a float64
	weight     float64
	quality    float64
}

func (c gradCell) normalized() RGBA {
	if c.quality <= 0 {
		return Transparent
	}
	return RGBA{R: c.r / c.quality, G: c.g / c.quality, B: c.b / c.quality, A: c.a / c.quality}
}

// gradientVolume is the (Wg, Hg, Dg) accumulator described in spec.md §3
// and §4.9. Dg == 1 produces a 2D ramp; Dg > 1 produces an experimental 3D
// cube.
type gradientVolume struct {
	w, h, d int
	cells   []gradCell
}

func newGradientVolume(w, h, d int) *gradientVolume {
	if d < 1 {
		d = 1
	}
	return &gradientVolume{w: w, h: h, d: d, cells: make([]gradCell, w*h*d)}
}

func (v *gradientVolume) idx(x, y, z int) int { return (z*v.h+y)*v.w + x }

// depositTrilinear splats a color across the 8 (or fewer, when Dg==1) grid
// corners nearest a fractional (x, y, z) coordinate, accumulating
// weight*lerpWeight-scaled contributions.
func (v *gradientVolume) depositTrilinear(x, y, z float64, c RGBA, weight, lerpWeight float64) {
	x0, y0, z0 := clampi(int(x), 0, v.w-1), clampi(int(y), 0, v.h-1), clampi(int(z), 0, v.d-1)
	x1, y1, z1 := clampi(x0+1, 0, v.w-1), clampi(y0+1, 0, v.h-1), clampi(z0+1, 0, v.d-1)
	tx, ty, tz := x-float64(x0), y-float64(y0), z-float64(z0)
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	if tz < 0 {
		tz = 0
	}

	type corner struct {
		xi, yi, zi int
		w          float64
	}
	corners := [8]corner{
		{x0, y0, z0, (1 - tx) * (1 - ty) * (1 - tz)},
		{x1, y0, z0, tx * (1 - ty) * (1 - tz)},
		{x0, y1, z0, (1 - tx) * ty * (1 - tz)},
		{x1, y1, z0, tx * ty * (1 - tz)},
		{x0, y0, z1, (1 - tx) * (1 - ty) * tz},
		{x1, y0, z1, tx * (1 - ty) * tz},
		{x0, y1, z1, (1 - tx) * ty * tz},
		{x1, y1, z1, tx * ty * tz},
	}

	seen := make(map[int]bool, 8)
	for _, co := range corners {
		if co.w <= 0 {
			continue
		}
		i := v.idx(co.xi, co.yi, co.zi)
		if seen[i] {
			continue // degenerate axis (z0==z1 when Dg==1): don't double-deposit
		}
		seen[i] = true
		mass := co.w * weight * lerpWeight
		v.cells[i].r += c.R * mass
		v.cells[i].g += c.G * mass
		v.cells[i].b += c.B * mass
		v.cells[i].a += c.A * mass
		v.cells[i].weight += co.w
		v.cells[i].quality += mass
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// accumulatePass runs one full reverse-splat pass (C9) over every frame and
// every pixel into a fresh volume sized by opts. Pixels are visited in a
// fixed row-major order on one goroutine: every pixel may deposit into any
// volume cell, so row tiling would race on the shared cells and make the
// floating-point sums depend on scheduling.
func accumulatePass(frames []Frame, timing *RGBAImage, meta Metadata, opts *Options) *gradientVolume {
	v := newGradientVolume(opts.GradientWidth, opts.GradientHeight, opts.GradientDepth)
	width, height := timing.Width(), timing.Height()
	totalFrames := len(frames)
	if totalFrames == 0 {
		return v
	}

	for _, frame := range frames {
		t := float64(frame.ID()) / float64(totalFrames)
		img := frame.Image()

		for py := 0; py < height; py++ {
			for px := 0; px < width; px++ {
				tr, tg, tb, ta := timing.At(px, py)
				if ta == 0 {
					continue
				}
				R, G, B := float64(tr)/255, float64(tg)/255, float64(tb)/255
				if R == 0 && G == 0 {
					continue
				}

				fadeInStart := (1 - R) * meta.FadeInDuration
				fadeOutStart := 1 - meta.FadeOutDuration
				fadeOutEnd := G*meta.FadeOutDuration + fadeOutStart
				denom := fadeOutEnd - fadeInStart
				if denom == 0 {
					denom = 1e-9
				}
				fadeProgress := clamp01((t - fadeInStart) / denom)

				fadeInFactor := clamp01(fadeProgress - (1 - R))
				fadeOutFactor := clamp01(G - fadeProgress)

				hardnessGate := 1 - B
				weight := clamp01(fadeInFactor*15*hardnessGate) * clamp01(fadeOutFactor*15*hardnessGate)
				if weight == 0 {
					continue
				}

				sr, sg, sb, sa := img.At(px, py)
				lin := color.SRGBToLinearColor(color.U8ToF32(color.ColorU8{R: sr, G: sg, B: sb, A: 255}))
				splat := RGBA{R: float64(lin.R), G: float64(lin.G), B: float64(lin.B), A: 1}
				alphaScale := float64(sa) / 255
				weight *= alphaScale
				if weight == 0 {
					continue
				}

				if opts.GradientDepth > 1 {
					v.depositTrilinear(
						R*float64(v.w), G*float64(v.h), fadeProgress*float64(v.d),
						splat, weight, 1,
					)
					continue
				}

				life := fadeProgress
				v.depositTrilinear(
					life*0.5*float64(v.w), (1-fadeInFactor)*float64(v.h), 0,
					splat, weight, 1-life,
				)
				v.depositTrilinear(
					(0.5+0.5*life)*float64(v.w), fadeOutFactor*float64(v.h), 0,
					splat, weight, life,
				)
			}
		}
	}
	return v
}

// refine blends a freshly-accumulated pass half-way toward the previous
// pass's normalized color at every cell that already had data, per the
// second-gradient-pass interpretation recorded in DESIGN.md.
func (v *gradientVolume) refine(fresh *gradientVolume) {
	for i := range v.cells {
		prev := v.cells[i]
		if prev.quality <= 0 {
			v.cells[i] = fresh.cells[i]
			continue
		}
		ref := prev.normalized()
		next := fresh.cells[i]
		if next.quality <= 0 {
			continue // no new data this pass; keep the previous estimate
		}
		blended := next.normalized().Lerp(ref, 0.5)
		v.cells[i] = gradCell{
			r:       blended.R * next.quality,
			g:       blended.G * next.quality,
			b:       blended.B * next.quality,
			a:       blended.A * next.quality,
			weight:  next.weight,
			quality: next.quality,
		}
	}
}
