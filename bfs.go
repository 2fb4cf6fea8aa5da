package gdbscan

import (
	"sync"
	"sync/atomic"
)

// IdentifyClusters is Andrade et al.'s Algorithm 2: scanning vertices in
// ascending order, each unclustered Core vertex seeds a new cluster and a
// level-synchronous parallel BFS that assigns cluster ids to everything
// it reaches, relabeling any reachable Noise vertex to Border along the
// way. Requires Classify to have run first.
//
// Cluster ids are assigned in ascending-vertex-scan order, so the result
// is deterministic regardless of numWorkers or goroutine scheduling:
// within one BFS, a vertex is admitted to the frontier by an atomic
// compare-and-swap on its cluster id from -1, so two workers racing on
// the same neighbor in the same level can't both enqueue it — exactly
// one CAS succeeds, and that worker alone appends it to the next level.
func IdentifyClusters(g *Graph, numWorkers int) {
	g.assertImmutable()
	if numWorkers < 1 {
		numWorkers = 1
	}

	var cluster int32
	for v := 0; v < g.n; v++ {
		if g.clusterIDs[v] != -1 || g.membership[v] != Core {
			continue
		}
		atomic.StoreInt32(&g.clusterIDs[v], cluster)
		runBFS(g, int32(v), cluster, numWorkers)
		cluster++
	}
}

// runBFS expands the frontier seeded at root, level by level, until it
// empties.
func runBFS(g *Graph, root, cluster int32, numWorkers int) {
	frontier := []int32{root}
	for len(frontier) > 0 {
		frontier = expandLevel(g, frontier, cluster, numWorkers)
	}
}

// expandLevel partitions the current frontier into contiguous chunks
// across numWorkers; each worker accumulates its own next-level buffer,
// and the buffers are concatenated in worker-id order after the barrier
// to form the new frontier.
func expandLevel(g *Graph, frontier []int32, cluster int32, numWorkers int) []int32 {
	m := len(frontier)
	chunk := (m + numWorkers - 1) / numWorkers
	nextByWorker := make([][]int32, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * chunk
		if start >= m {
			break
		}
		end := start + chunk
		if end > m {
			end = m
		}
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			nextByWorker[w] = expandChunk(g, frontier[start:end], cluster)
		}(w, start, end)
	}
	wg.Wait()

	next := make([]int32, 0, m)
	for _, part := range nextByWorker {
		next = append(next, part...)
	}
	return next
}

// expandChunk expands one worker's share of the current frontier,
// returning the subset of neighbors this worker newly admitted.
func expandChunk(g *Graph, nodes []int32, cluster int32) []int32 {
	var local []int32
	for _, node := range nodes {
		// Relabel a reachable Noise node, but do not expand through it.
		// Each node appears in at most one frontier (admission is gated
		// by the CAS below), so this write races with nothing.
		if g.membership[node] == Noise {
			g.membership[node] = Border
			continue
		}
		for _, nb := range g.Neighbors(int(node)) {
			if atomic.CompareAndSwapInt32(&g.clusterIDs[nb], -1, cluster) {
				local = append(local, nb)
			}
		}
	}
	return local
}
