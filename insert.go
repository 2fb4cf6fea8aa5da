package gdbscan

import (
	"math/bits"
	"sync"
)

// InsertAllEdges is the edge-insertion engine (Andrade et al.'s
// Algorithm 1): for every ordered pair (u, v) with u != v and squared
// distance <= sqRadius, it records v as a neighbor of u in g's temporary
// adjacency.
//
// The N vertices are partitioned into contiguous chunks of size
// ceil(N/numWorkers); worker t owns vertices
// [t*chunk, min((t+1)*chunk, N)) and writes only into its own vertices'
// rows, so no synchronization between workers is needed during this
// stage.
//
// Each owned vertex's candidates are tested 8 at a time via the
// batch-of-8 kernel in kernel.go; PointSet pads its coordinate arrays to
// a multiple of 8 so every block read is in range, and out-of-range or
// self candidates are discarded by the index check here, never by the
// kernel.
func InsertAllEdges(g *Graph, points *PointSet, sqRadius float32, numWorkers int) (err error) {
	n := g.Len()
	if n == 0 {
		return nil
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	chunk := (n + numWorkers - 1) / numWorkers
	errs := make([]error, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(start, end, worker int) {
			defer wg.Done()
			defer recoverWorkerError(&errs[worker])
			insertRange(g, points, sqRadius, start, end)
		}(start, end, w)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// insertRange runs the inner range-search loop for owned vertices
// [start, end). paddedLen is the PointSet's padded coordinate-array
// length, always a multiple of 8.
func insertRange(g *Graph, points *PointSet, sqRadius float32, start, end int) {
	n := g.Len()
	paddedLen := len(points.x)

	for u := start; u < end; u++ {
		ux, uy := points.x[u], points.y[u]
		for v0 := 0; v0 < paddedLen; v0 += 8 {
			block := loadBlock8(points, v0)
			mask := testBlock8(ux, uy, block, sqRadius)
			for mask != 0 {
				k := bits.TrailingZeros8(mask)
				v := v0 + k
				if v != u && v < n {
					g.InsertEdge(u, v)
				}
				mask &= mask - 1
			}
		}
	}
}
