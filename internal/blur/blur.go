// Package blur implements the smart-blur stage (C6): constraint-preserving
// iterative diffusion over a quantized integer field, converging toward a
// smooth float field without crossing iso-level boundaries it shouldn't.
package blur

// Result carries the smoothed field and how many iterations it took.
type Result struct {
	Output     []float64
	Iterations int
}

// Run smooths a quantized int16 field (transparent cells marked -1) using
// a red-black sweep: each non-transparent pixel snaps to its own level if
// any neighbor sits exactly one level below (preserving that edge), stays
// unchanged if it is the local maximum among its filled neighbors, and
// otherwise averages its filled neighbors' current output. Iterates until
// the largest per-pixel change drops below threshold or maxIterations is
// reached, then runs three unclamped smoothing passes to soften any
// residual sharpness left by the clamp rule.
func Run(src []int16, width, height int, maxIterations int, threshold float64) Result {
	n := width * height
	output := make([]float64, n)
	filled := make([]bool, n)
	for i, v := range src {
		if v >= 0 {
			output[i] = float64(v)
			filled[i] = true
		}
	}

	idx := func(x, y int) int { return y*width + x }
	inBounds := func(x, y int) bool { return x >= 0 && x < width && y >= 0 && y < height }

	sweep := func(parity int, clampEnabled bool) float64 {
		var maxChange float64
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if (x+y)%2 != parity {
					continue
				}
				i := idx(x, y)
				if !filled[i] {
					continue
				}
				myLevel := src[i]

				var neighborInputs []int16
				var neighborOutputs []float64
				isLocalMax := true
				anyLower := false
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if !inBounds(nx, ny) {
							continue
						}
						ni := idx(nx, ny)
						if !filled[ni] {
							continue
						}
						neighborInputs = append(neighborInputs, src[ni])
						neighborOutputs = append(neighborOutputs, output[ni])
						if src[ni] == myLevel-1 {
							anyLower = true
						}
						if src[ni] > myLevel {
							isLocalMax = false
						}
					}
				}

				if len(neighborInputs) == 0 {
					continue
				}

				prev := output[i]
				var next float64
				switch {
				case clampEnabled && anyLower:
					next = float64(myLevel)
				case isLocalMax:
					next = prev
				default:
					var sum float64
					for _, v := range neighborOutputs {
						sum += v
					}
					next = sum / float64(len(neighborOutputs))
				}

				output[i] = next
				if d := next - prev; d < 0 {
					d = -d
					if d > maxChange {
						maxChange = d
					}
				} else if d > maxChange {
					maxChange = d
				}
			}
		}
		return maxChange
	}

	iterations := 0
	for iterations < maxIterations {
		c0 := sweep(0, true)
		c1 := sweep(1, true)
		iterations++
		if c0 < threshold && c1 < threshold {
			break
		}
	}

	for i := 0; i < 3; i++ {
		sweep(0, false)
		sweep(1, false)
	}

	return Result{Output: output, Iterations: iterations}
}
