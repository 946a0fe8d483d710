// Package parallel provides deterministic row-tiling for the pipeline's
// per-pixel passes whose writes stay within their own rows (chroma alpha
// with envelope accumulation, and the timing-map encoding). Each worker owns a disjoint, contiguous range of
// rows and never touches another worker's rows, so fan-out is pure: the
// merged result does not depend on goroutine scheduling order. Adapted from
// the library's tile-based WorkerPool, simplified from a persistent
// work-stealing pool to a one-shot wait-for-all fan-out, since every pass
// here runs to completion rather than servicing a continuous stream of
// incoming work.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinRowsPerWorker bounds how finely work is split; passes cheaper than
// this per row are not worth the goroutine overhead.
const MinRowsPerWorker = 8

// Rows splits the row range [0, height) into contiguous chunks and invokes
// fn(y0, y1) for each chunk concurrently, waiting for all chunks to finish
// before returning. fn must only write to rows in [y0, y1).
//
// The number of chunks is bounded by GOMAXPROCS and by height/MinRowsPerWorker,
// so small images run on a single goroutine rather than paying fan-out
// overhead for no benefit.
func Rows(height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if maxByMinChunk := height / MinRowsPerWorker; maxByMinChunk < workers {
		workers = maxByMinChunk
	}
	if workers < 1 {
		workers = 1
	}

	if workers == 1 {
		fn(0, height)
		return
	}

	var g errgroup.Group
	chunk := (height + workers - 1) / workers
	for y0 := 0; y0 < height; y0 += chunk {
		y0 := y0
		y1 := y0 + chunk
		if y1 > height {
			y1 = height
		}
		g.Go(func() error {
			fn(y0, y1)
			return nil
		})
	}
	_ = g.Wait() // fn never returns an error
}
