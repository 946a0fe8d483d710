// Package fields holds the shared spatial primitives the quantized
// interpolator builds on: connected-component labeling, a generic
// priority-queue flood fill, and two-pass chamfer distance.
package fields

// LabelRegions assigns a positive label to every 4- or 8-connected run of
// pixels sharing the same source value. Pixels with src < 0 (transparent)
// always receive label 0. Returns the label image and the number of
// regions found (excluding background).
func LabelRegions(src []int16, width, height int, eightConnected bool) (labels []int32, numRegions int) {
	labels = make([]int32, len(src))
	uf := newUnionFind(len(src))

	idx := func(x, y int) int { return y*width + x }

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := idx(x, y)
			if src[i] < 0 {
				continue
			}
			// Union with same-value already-visited neighbors (left,
			// top, and, for 8-connectivity, the two top diagonals).
			if x > 0 && src[idx(x-1, y)] == src[i] {
				uf.union(i, idx(x-1, y))
			}
			if y > 0 && src[idx(x, y-1)] == src[i] {
				uf.union(i, idx(x, y-1))
			}
			if eightConnected && x > 0 && y > 0 && src[idx(x-1, y-1)] == src[i] {
				uf.union(i, idx(x-1, y-1))
			}
			if eightConnected && x < width-1 && y > 0 && src[idx(x+1, y-1)] == src[i] {
				uf.union(i, idx(x+1, y-1))
			}
		}
	}

	remap := make(map[int]int32)
	for i, v := range src {
		if v < 0 {
			continue
		}
		root := uf.find(i)
		id, ok := remap[root]
		if !ok {
			numRegions++
			id = int32(numRegions)
			remap[root] = id
		}
		labels[i] = id
	}
	return labels, numRegions
}

type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p, rank: make([]uint8, n)}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}
