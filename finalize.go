package gdbscan

import "sync"

// Finalize converts g's temporary adjacency into the immutable CSR form
// (Andrade et al.'s graph construction): a degree pass, a serial
// exclusive prefix sum over degrees, edge-array allocation, and a
// parallel scatter of neighbors into their disjoint slots. Panics with
// *LifecycleError if g is already finalized.
//
// After Finalize, g.offsets[u] + g.degrees[u] == g.offsets[u+1] for
// u < N-1, g.offsets[N-1] + g.degrees[N-1] == len(edges), and
// g.offsets[0] == 0.
func (g *Graph) Finalize(numWorkers int) error {
	g.assertMutable()
	if numWorkers < 1 {
		numWorkers = 1
	}

	n := g.n
	g.offsets = make([]int32, n)
	g.degrees = make([]int32, n)

	computeDegreesParallel(g, numWorkers)

	var total int32
	for u := 0; u < n; u++ {
		g.offsets[u] = total
		total += g.degrees[u]
	}

	if total == 0 {
		g.bitsetRows = nil
		g.sparseRows = nil
		g.finalized = true
		return nil
	}

	g.edges = make([]int32, total)
	scatterParallel(g, numWorkers)

	g.bitsetRows = nil
	g.sparseRows = nil
	g.finalized = true
	return nil
}

// computeDegreesParallel fills g.degrees by partitioning vertices into
// contiguous per-worker chunks, the same fork-join shape insert.go uses.
func computeDegreesParallel(g *Graph, numWorkers int) {
	n := g.n
	if n == 0 {
		return
	}
	chunk := (n + numWorkers - 1) / numWorkers

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
		go func(start, end int) {
			defer wg.Done()
			for u := start; u < end; u++ {
				if g.bitsetRows != nil {
					g.degrees[u] = int32(g.bitsetRows[u].degree())
				} else {
					g.degrees[u] = int32(g.sparseRows[u].degree())
				}
			}
		}(start, end)
	}
	wg.Wait()
}

// scatterParallel writes each vertex's neighbors into its disjoint slice
// of g.edges. Workers partition vertices by stride (u = tid, tid+T, ...),
// so no locking is needed: the destination ranges for distinct vertices
// are disjoint by construction of the prefix sum, and each vertex is
// owned by exactly one worker.
func scatterParallel(g *Graph, numWorkers int) {
	n := g.n
	var wg sync.WaitGroup
	for tid := 0; tid < numWorkers; tid++ {
		wg.Add(1)
		go func(tid int) {
			defer wg.Done()
			for u := tid; u < n; u += numWorkers {
				start := int(g.offsets[u])
				degree := int(g.degrees[u])
				dst := g.edges[start:start : start+degree]
				if g.bitsetRows != nil {
					dst = g.bitsetRows[u].appendAscending(dst)
				} else {
					dst = append(dst, g.sparseRows[u]...)
				}
				_ = dst // same backing array as g.edges; write is already visible
			}
		}(tid)
	}
	wg.Wait()
}
