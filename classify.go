package gdbscan

// Classify marks each vertex Core or Noise by degree threshold:
// membership[u] = Core if degree(u) >= minPts, else Noise. A pure
// function of the finalized degrees; requires Finalize to have run.
// Border is never produced here — only IdentifyClusters's BFS relabels a
// reachable Noise vertex to Border.
func Classify(g *Graph, minPts int) {
	g.assertImmutable()
	for u := 0; u < g.n; u++ {
		if int(g.degrees[u]) >= minPts {
			g.membership[u] = Core
		} else {
			g.membership[u] = Noise
		}
	}
}
