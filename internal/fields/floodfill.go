package fields

import "container/heap"

// Rule computes a cell's fill value from its already-filled neighbors.
// Each neighbor carries its value and its Euclidean distance (1 or √2)
// from the cell being filled.
type Rule func(neighbors []Neighbor) float64

// Neighbor is one already-filled cell adjacent to a cell being filled.
type Neighbor struct {
	Value    float64
	Distance float64
}

// DistanceRule fills with the minimum of neighbor.Value + neighbor.Distance.
func DistanceRule(neighbors []Neighbor) float64 {
	best := neighbors[0].Value + neighbors[0].Distance
	for _, n := range neighbors[1:] {
		if v := n.Value + n.Distance; v < best {
			best = v
		}
	}
	return best
}

// WeightedAverageRule fills with Σ(v/d) / Σ(1/d).
func WeightedAverageRule(neighbors []Neighbor) float64 {
	var num, den float64
	for _, n := range neighbors {
		w := 1 / n.Distance
		num += n.Value * w
		den += w
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// MinRule fills with the minimum neighbor value.
func MinRule(neighbors []Neighbor) float64 {
	best := neighbors[0].Value
	for _, n := range neighbors[1:] {
		if n.Value < best {
			best = n.Value
		}
	}
	return best
}

// MaxRule fills with the maximum neighbor value.
func MaxRule(neighbors []Neighbor) float64 {
	best := neighbors[0].Value
	for _, n := range neighbors[1:] {
		if n.Value > best {
			best = n.Value
		}
	}
	return best
}

// AverageRule fills with the unweighted mean of neighbor values.
func AverageRule(neighbors []Neighbor) float64 {
	var sum float64
	for _, n := range neighbors {
		sum += n.Value
	}
	return sum / float64(len(neighbors))
}

// Seed is a starting cell for FloodFill.
type Seed struct {
	X, Y  int
	Value float64
}

type fillItem struct {
	x, y     int
	value    float64
	priority float64
}

type fillQueue []fillItem

func (q fillQueue) Len() int            { return len(q) }
func (q fillQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q fillQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *fillQueue) Push(x interface{}) { *q = append(*q, x.(fillItem)) }
func (q *fillQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

const sqrt2 = 1.4142135623730951

// FloodFill runs a generic Dijkstra-order priority-queue fill over a
// width x height grid. mask, if non-nil, gates which cells may be filled
// (a false entry is never visited). eightConnected selects 4- or
// 8-connectivity. Returns the filled value for every cell and a bool grid
// marking which cells were reached.
func FloodFill(width, height int, seeds []Seed, rule Rule, mask []bool, eightConnected bool) (values []float64, filled []bool) {
	values = make([]float64, width*height)
	filled = make([]bool, width*height)

	idx := func(x, y int) int { return y*width + x }
	inBounds := func(x, y int) bool { return x >= 0 && x < width && y >= 0 && y < height }
	allowed := func(x, y int) bool {
		if !inBounds(x, y) {
			return false
		}
		if mask == nil {
			return true
		}
		return mask[idx(x, y)]
	}

	pq := &fillQueue{}
	heap.Init(pq)
	for _, s := range seeds {
		if !allowed(s.X, s.Y) {
			continue
		}
		heap.Push(pq, fillItem{x: s.X, y: s.Y, value: s.Value, priority: 0})
	}

	type step struct {
		dx, dy int
		dist   float64
	}
	neighbors4 := []step{{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1}}
	neighbors8 := append(append([]step{}, neighbors4...),
		step{1, 1, sqrt2}, step{1, -1, sqrt2}, step{-1, 1, sqrt2}, step{-1, -1, sqrt2})
	steps := neighbors4
	if eightConnected {
		steps = neighbors8
	}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(fillItem)
		i := idx(cur.x, cur.y)
		if filled[i] {
			continue // first pop wins; later, farther entries are stale
		}
		filled[i] = true
		values[i] = cur.value

		for _, st := range steps {
			nx, ny := cur.x+st.dx, cur.y+st.dy
			if !allowed(nx, ny) || filled[idx(nx, ny)] {
				continue
			}
			ni := idx(nx, ny)
			collected := collectFilledNeighbors(nx, ny, width, height, filled, values, eightConnected)
			if len(collected) == 0 {
				continue
			}
			val := rule(collected)
			priority := cur.priority + st.dist
			_ = ni
			heap.Push(pq, fillItem{x: nx, y: ny, value: val, priority: priority})
		}
	}
	return values, filled
}

func collectFilledNeighbors(x, y, width, height int, filled []bool, values []float64, eightConnected bool) []Neighbor {
	type step struct {
		dx, dy int
		dist   float64
	}
	steps := []step{{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1}}
	if eightConnected {
		steps = append(steps, step{1, 1, sqrt2}, step{1, -1, sqrt2}, step{-1, 1, sqrt2}, step{-1, -1, sqrt2})
	}
	var out []Neighbor
	for _, st := range steps {
		nx, ny := x+st.dx, y+st.dy
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		i := ny*width + nx
		if filled[i] {
			out = append(out, Neighbor{Value: values[i], Distance: st.dist})
		}
	}
	return out
}
