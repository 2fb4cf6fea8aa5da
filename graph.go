package gdbscan

// Graph holds a vertex set's neighbor relation. It starts out mutable
// (temporary per-vertex adjacency, written during edge insertion) and
// transitions exactly once, via Finalize, into an immutable CSR form
// (offsets/degrees table plus a packed edge array). Insertion after
// Finalize, or Finalize called twice, is a programmer error and panics
// with a *LifecycleError.
//
// The offsets/degrees table is represented as two parallel slices rather
// than one interleaved slice.
type Graph struct {
	n        int
	strategy AdjacencyStrategy

	// Mutable phase. Exactly one of these is non-nil, chosen by strategy.
	bitsetRows []bitsetRow
	sparseRows []sparseRow

	// Immutable phase, populated by Finalize.
	finalized bool
	offsets   []int32
	degrees   []int32
	edges     []int32

	// Populated by Classify and IdentifyClusters respectively; both live
	// for the whole lifetime of the Graph once allocated, unlike the
	// adjacency fields above which are released at Finalize.
	membership []Membership
	clusterIDs []int32
}

// NewGraph allocates a mutable Graph for n vertices using the resolved
// adjacency strategy (AdjacencyAuto is resolved against n immediately).
func NewGraph(n int, strategy AdjacencyStrategy) *Graph {
	if n < 0 {
		panic(configError("n", n, "must be >= 0"))
	}
	g := &Graph{
		n:          n,
		strategy:   resolveAdjacencyStrategy(strategy, n),
		membership: make([]Membership, n),
		clusterIDs: make([]int32, n),
	}
	for i := range g.clusterIDs {
		g.clusterIDs[i] = -1
	}
	switch g.strategy {
	case AdjacencyBitset:
		g.bitsetRows = make([]bitsetRow, n)
		for i := range g.bitsetRows {
			g.bitsetRows[i] = newBitsetRow(n)
		}
	default:
		g.sparseRows = make([]sparseRow, n)
	}
	return g
}

// Len returns the number of vertices, N.
func (g *Graph) Len() int { return g.n }

// Strategy returns the resolved adjacency strategy in use.
func (g *Graph) Strategy() AdjacencyStrategy { return g.strategy }

// Finalized reports whether Finalize has completed.
func (g *Graph) Finalized() bool { return g.finalized }

// InsertEdge records v as a neighbor of u: an ordered, one-directional
// write into u's own row. The caller is responsible for inserting both
// (u, v) and (v, u) to materialize a symmetric relation; insert.go's
// engine gets this by testing every ordered pair, each worker writing
// only its own vertices' rows. Panics with
// *BoundsError or *LifecycleError on misuse — these are programmer
// errors, not runtime conditions to recover from inline on the hot path.
func (g *Graph) InsertEdge(u, v int) {
	g.assertMutable()
	if u < 0 || u >= g.n {
		panic(&BoundsError{Index: u, N: g.n})
	}
	if v < 0 || v >= g.n {
		panic(&BoundsError{Index: v, N: g.n})
	}
	if u == v {
		return
	}
	if g.bitsetRows != nil {
		g.bitsetRows[u].set(v)
	} else {
		g.sparseRows[u].append(v)
	}
}

// Degree returns vertex u's degree. Valid after Finalize.
func (g *Graph) Degree(u int) int {
	g.assertImmutable()
	return int(g.degrees[u])
}

// Offset returns vertex u's starting position in the edge array. Valid
// after Finalize.
func (g *Graph) Offset(u int) int {
	g.assertImmutable()
	return int(g.offsets[u])
}

// Neighbors returns vertex u's neighbor ids as a slice view into the
// packed edge array (ascending order within each word for the bitset
// shape; insertion order for the sparse shape). Valid after Finalize.
// The returned slice must not be mutated.
func (g *Graph) Neighbors(u int) []int32 {
	g.assertImmutable()
	start := g.offsets[u]
	return g.edges[start : start+g.degrees[u]]
}

// Membership returns vertex u's membership. Valid after Classify.
func (g *Graph) Membership(u int) Membership { return g.membership[u] }

// ClusterID returns vertex u's cluster id, or -1 if unassigned. Valid
// after IdentifyClusters.
func (g *Graph) ClusterID(u int) int32 { return g.clusterIDs[u] }

func (g *Graph) assertMutable() {
	if g.finalized {
		panic(&LifecycleError{Msg: "Graph is immutable; Finalize has already been called"})
	}
}

func (g *Graph) assertImmutable() {
	if !g.finalized {
		panic(&LifecycleError{Msg: "Finalize has not been called on this Graph"})
	}
}
