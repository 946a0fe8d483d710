// Package sdf implements the quantized-level interpolator (C5): it removes
// banding from a low-bit-depth integer field by solving a layered,
// per-region signed-distance search between adjacent integer levels and
// interpolating a continuous value from the two nearest iso-boundaries.
package sdf

import (
	"container/heap"
	"math"
)

// Unset marks an SDF cell that has not yet been reached by any level.
const Unset = 256

// MaxIterations bounds the layered search (invariant 4: C5 always
// terminates within 255 iterations regardless of input).
const MaxIterations = 255

type cell struct {
	dx, dy      int32
	sourceValue int32
}

type queueItem struct {
	x, y        int
	dx, dy      int32
	sourceValue int32
	priority    int64
}

type sdfQueue []queueItem

func (q sdfQueue) Len() int            { return len(q) }
func (q sdfQueue) Less(i, j int) bool  { return q[i].priority < q[j].priority }
func (q sdfQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *sdfQueue) Push(x interface{}) { *q = append(*q, x.(queueItem)) }
func (q *sdfQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

var eightDirs = [8][2]int32{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Interpolate dequantizes src (transparent cells marked -1) into a
// continuous float field, using labels (from fields.LabelRegions) to scope
// each region's independent floor progression.
func Interpolate(src []int16, labels []int32, numRegions, width, height int) []float64 {
	n := width * height
	idx := func(x, y int) int { return y*width + x }
	inBounds := func(x, y int) bool { return x >= 0 && x < width && y >= 0 && y < height }

	distLower := make([]float64, n)
	distHigher := make([]float64, n)
	for i := range distLower {
		distLower[i] = -1
		distHigher[i] = -1
	}

	targetFloor := make([]int32, numRegions+1)
	nextFloor := make([]int32, numRegions+1)
	for r := range targetFloor {
		targetFloor[r] = -1
		nextFloor[r] = Unset
	}

	for iteration := 0; iteration < MaxIterations; iteration++ {
		cells := make([]cell, n)
		for i := range cells {
			cells[i].sourceValue = Unset
		}

		pq := &sdfQueue{}
		heap.Init(pq)
		push := func(x, y int, dx, dy, sv int32) {
			heap.Push(pq, queueItem{x: x, y: y, dx: dx, dy: dy, sourceValue: sv, priority: int64(dx)*int64(dx) + int64(dy)*int64(dy)})
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := idx(x, y)
				if src[i] < 0 {
					continue
				}
				v := int32(src[i])
				for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					nx, ny := x+int(d[0]), y+int(d[1])
					if !inBounds(nx, ny) {
						continue
					}
					ni := idx(nx, ny)
					if src[ni] < 0 {
						continue
					}
					if nv := int32(src[ni]); nv != v {
						push(x, y, 0, 0, nv)
					}
				}
			}
		}

		anyWork := false
		for pq.Len() > 0 {
			it := heap.Pop(pq).(queueItem)
			i := idx(it.x, it.y)
			region := labels[i]
			if region == 0 {
				continue
			}
			cur := cells[i]
			candidateDistSq := int64(it.dx)*int64(it.dx) + int64(it.dy)*int64(it.dy)
			curDistSq := int64(cur.dx)*int64(cur.dx) + int64(cur.dy)*int64(cur.dy)
			better := cur.sourceValue == Unset || it.sourceValue < cur.sourceValue ||
				(it.sourceValue == cur.sourceValue && candidateDistSq < curDistSq)
			if !better || it.sourceValue <= targetFloor[region] {
				continue
			}

			cells[i] = cell{dx: it.dx, dy: it.dy, sourceValue: it.sourceValue}
			anyWork = true
			if it.sourceValue < nextFloor[region] {
				nextFloor[region] = it.sourceValue
			}

			v := int32(src[i])
			dist := math.Sqrt(float64(candidateDistSq))
			if it.sourceValue == v-1 && distLower[i] < 0 {
				distLower[i] = dist
			}
			if it.sourceValue == v+1 && distHigher[i] < 0 {
				distHigher[i] = dist
			}

			for _, d := range eightDirs {
				nx, ny := it.x+int(d[0]), it.y+int(d[1])
				if !inBounds(nx, ny) {
					continue
				}
				ni := idx(nx, ny)
				if src[ni] < 0 || int32(src[ni]) != v {
					continue // same-plane constraint
				}
				push(nx, ny, abs32(it.dx)+abs32(d[0]), abs32(it.dy)+abs32(d[1]), it.sourceValue)
			}
		}

		if !anyWork {
			break
		}
		for r := 1; r <= numRegions; r++ {
			if nextFloor[r] < Unset {
				targetFloor[r] = nextFloor[r]
			}
			nextFloor[r] = Unset
		}
	}

	maxLower := make([]float64, numRegions+1)
	maxHigher := make([]float64, numRegions+1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := idx(x, y)
			r := labels[i]
			if r == 0 {
				continue
			}
			if distLower[i] > maxLower[r] {
				maxLower[r] = distLower[i]
			}
			if distHigher[i] > maxHigher[r] {
				maxHigher[r] = distHigher[i]
			}
		}
	}
	for r := range maxLower {
		maxLower[r]++
		maxHigher[r]++
	}

	out := make([]float64, n)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := idx(x, y)
			if src[i] < 0 {
				out[i] = 0
				continue
			}
			v := float64(src[i])
			r := labels[i]
			dl, dh := distLower[i], distHigher[i]

			var t float64
			switch {
			case dl >= 0 && dh >= 0:
				t = dl / (dl + dh)
			case dl >= 0:
				t = dl / maxLower[r]
			case dh >= 0:
				t = 1 - dh/maxHigher[r]
			default:
				t = 0
			}
			result := v - 1 + t
			if result < 0 {
				result = 0
			}
			out[i] = result
		}
	}
	return out
}
