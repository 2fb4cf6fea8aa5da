// Package gdbscan implements G-DBSCAN, the graph-reformulated DBSCAN of
// Andrade et al.: the fixed-radius neighborhood relation over a set of 2D
// points is materialized once as a static graph in compressed-sparse-row
// (CSR) form, and cluster discovery reduces to a level-synchronous
// breadth-first search over that graph.
//
// Basic usage:
//
//	points := gdbscan.NewPointSet(n)
//	points.Set(0, 0, 0)
//	// ... fill in the remaining points ...
//
//	cfg := gdbscan.DefaultConfig()
//	cfg.MinPts = 4
//	cfg.Radius = 1.5
//	result, err := gdbscan.Run(points, cfg)
//	// result.ClusterIDs[i] is the cluster ID for point i (-1 = noise)
//	// result.Membership[i] is one of Core, Border, Noise
//
// # Pipeline
//
// Run drives five stages, each consuming the previous stage's output and
// running exactly once: build the mutable adjacency graph, insert edges in
// parallel (an exact O(n²) range search, not an approximate tree-pruned
// one), finalize into CSR form, classify vertices as Core or Noise by
// degree, and identify clusters with a parallel BFS that relabels
// reachable Noise vertices as Border.
//
// # Adjacency representation
//
// Config.AdjacencyStrategy selects how the pre-finalize adjacency is held
// per vertex: AdjacencyBitset (a packed bit row, best for large, dense
// graphs) or AdjacencySparse (a growable index list, best for low
// density). AdjacencyAuto picks based on point count. Both converge on
// the same CSR representation after Finalize, so nothing downstream of
// finalization needs to know which one was used.
package gdbscan
