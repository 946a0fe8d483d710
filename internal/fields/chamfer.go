package fields

import "math"

// Chamfer computes an approximate Euclidean distance transform using the
// classic two-pass 3/4 chamfer approximation, plus the (x, y) of the
// nearest boundary source for every pixel. src marks boundary/source
// pixels with isSource(x, y) == true; those pixels get distance 0 and are
// their own nearest source.
func Chamfer(width, height int, isSource func(x, y int) bool) (dist []float64, nearestX, nearestY []int32) {
	const big = 1 << 28
	n := width * height
	dist = make([]float64, n)
	nearestX = make([]int32, n)
	nearestY = make([]int32, n)

	idx := func(x, y int) int { return y*width + x }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := idx(x, y)
			if isSource(x, y) {
				dist[i] = 0
				nearestX[i] = int32(x)
				nearestY[i] = int32(y)
			} else {
				dist[i] = big
				nearestX[i] = -1
				nearestY[i] = -1
			}
		}
	}

	type probe struct{ dx, dy int; weight float64 }

	relax := func(x, y int, probes []probe) {
		i := idx(x, y)
		for _, p := range probes {
			nx, ny := x+p.dx, y+p.dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			j := idx(nx, ny)
			if dist[j] == big {
				continue
			}
			cand := dist[j] + p.weight
			if cand < dist[i] {
				dist[i] = cand
				nearestX[i] = nearestX[j]
				nearestY[i] = nearestY[j]
			}
		}
	}

	// Pass 1: top-left -> bottom-right, checking left/top/top-left/top-right.
	pass1 := []probe{{-1, 0, 3}, {0, -1, 3}, {-1, -1, 4}, {1, -1, 4}}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			relax(x, y, pass1)
		}
	}

	// Pass 2: bottom-right -> top-left, checking right/bottom/bottom-right/bottom-left.
	pass2 := []probe{{1, 0, 3}, {0, 1, 3}, {1, 1, 4}, {-1, 1, 4}}
	for y := height - 1; y >= 0; y-- {
		for x := width - 1; x >= 0; x-- {
			relax(x, y, pass2)
		}
	}

	const scale = 1.0 / 3.0
	for i := range dist {
		if dist[i] >= big {
			dist[i] = math.Inf(1)
			continue
		}
		dist[i] *= scale
	}
	return dist, nearestX, nearestY
}
