package erosion

import "github.com/gogpu/erosion/internal/color"

// holeFill performs the C10 expanding-radius inverse-square gather: every
// cell with no accumulated quality is filled from nearby cells that do
// have quality, weighted by 1/distance^2, up to maxRadius cells away.
func (v *gradientVolume) holeFill(maxRadius int) {
	type coord struct{ x, y, z int }
	var empties []coord
	for z := 0; z < v.d; z++ {
		for y := 0; y < v.h; y++ {
			for x := 0; x < v.w; x++ {
				c := v.cells[v.idx(x, y, z)]
				if c.weight == 0 || c.quality == 0 {
					empties = append(empties, coord{x, y, z})
				}
			}
		}
	}

	filled := make([]gradCell, len(empties))
	for n, e := range empties {
		var sumR, sumG, sumB, sumA, sw float64
		for r := 1; r <= maxRadius && sw == 0; r++ {
			for dz := -r; dz <= r; dz++ {
				z := e.z + dz
				if z < 0 || z >= v.d {
					continue
				}
				for dy := -r; dy <= r; dy++ {
					y := e.y + dy
					if y < 0 || y >= v.h {
						continue
					}
					for dx := -r; dx <= r; dx++ {
						x := e.x + dx
						if x < 0 || x >= v.w {
							continue
						}
						if maxInt3(iabs(dx), iabs(dy), iabs(dz)) != r {
							continue // only the new shell at this radius
						}
						cell := v.cells[v.idx(x, y, z)]
						if cell.quality <= 0 {
							continue
						}
						d2 := float64(dx*dx + dy*dy + dz*dz)
						if d2 == 0 {
							d2 = 1
						}
						w := 1 / d2
						sumR += cell.r / cell.quality * w * cell.weight
						sumG += cell.g / cell.quality * w * cell.weight
						sumB += cell.b / cell.quality * w * cell.weight
						sumA += cell.a / cell.quality * w * cell.weight
						sw += w * cell.weight
					}
				}
			}
		}
		if sw > 0 {
			filled[n] = gradCell{
				r: sumR / sw, g: sumG / sw, b: sumB / sw, a: sumA / sw,
				weight: 1, quality: 0, // quality 0 marks "filled, not normalized by a real pass"
			}
		}
	}

	for n, e := range empties {
		if filled[n].weight != 0 {
			v.cells[v.idx(e.x, e.y, e.z)] = filled[n]
		}
	}
}

// linearCellToSRGB converts a linear-light accumulator color (the space
// gradient.go splats colors into, see accumulatePass) back to gamma-encoded
// sRGB for output. Alpha is never gamma-encoded.
func linearCellToSRGB(r, g, b, a float64) RGBA {
	srgb := color.LinearToSRGBColor(color.ColorF32{R: float32(r), G: float32(g), B: float32(b), A: float32(a)})
	return RGBA{R: float64(srgb.R), G: float64(srgb.G), B: float64(srgb.B), A: float64(srgb.A)}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

// emitBytes converts the volume to RGBA8, laying out Dg > 1 as a vertical
// stack of Hg-tall slices, letting a caller treat the result as either a
// true 3D texture or a 2D atlas of stacked slices. A cell with weight == 0
// and quality == 0 was never reached by
// either accumulation or hole-fill and emits the magenta sentinel. A cell
// with quality == 0 but weight != 0 was hole-filled: its r/g/b/a already
// hold a final averaged color (see holeFill), so it is emitted as-is. A
// cell with quality > 0 was reached by a real accumulation pass and is
// normalized by dividing through; its quality is then rescaled by its
// weight so a subsequent pass has a comparable basis.
func (v *gradientVolume) emitBytes() *RGBAImage {
	out := NewRGBAImage(v.w, v.h*v.d)
	for z := 0; z < v.d; z++ {
		for y := 0; y < v.h; y++ {
			for x := 0; x < v.w; x++ {
				i := v.idx(x, y, z)
				c := &v.cells[i]
				oy := z*v.h + y

				switch {
				case c.quality == 0 && c.weight == 0:
					out.Set(x, oy, 0xFF, 0x00, 0xFF, 0xFF)
				case c.quality == 0:
					out.SetColor(x, oy, linearCellToSRGB(c.r, c.g, c.b, c.a))
				default:
					inv := 1 / c.quality
					out.SetColor(x, oy, linearCellToSRGB(c.r*inv, c.g*inv, c.b*inv, c.a*inv))
					c.quality /= c.weight
				}
			}
		}
	}
	return out
}
