package gdbscan

// Result contains the output of G-DBSCAN clustering.
type Result struct {
	// ClusterIDs assigns each point to a cluster (0-indexed) or -1 for
	// noise. Dense range [0, NumClusters), assigned in ascending-vertex-
	// scan order.
	ClusterIDs []int32

	// Membership classifies each point as Core, Border, or Noise.
	Membership []Membership

	// NumClusters is the number of distinct clusters found.
	NumClusters int
}

// Run performs G-DBSCAN clustering on points with the given Config,
// driving the pipeline stages in order: build the mutable graph, insert
// edges in parallel, finalize into CSR form, classify by degree, and
// identify clusters via level-synchronous BFS. Each stage is single-shot
// and consumes the previous stage's output.
func Run(points *PointSet, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := points.Len()
	if n == 0 {
		return &Result{ClusterIDs: []int32{}, Membership: []Membership{}}, nil
	}

	sqRadius := float32(cfg.Radius * cfg.Radius)

	g := NewGraph(n, cfg.AdjacencyStrategy)

	var err error
	timeStage(cfg.Logger, "insert_edges", func() {
		err = InsertAllEdges(g, points, sqRadius, cfg.NumThreads)
	})
	if err != nil {
		return nil, err
	}

	timeStage(cfg.Logger, "finalize", func() {
		err = g.Finalize(cfg.NumThreads)
	})
	if err != nil {
		return nil, err
	}

	timeStage(cfg.Logger, "classify_nodes", func() {
		Classify(g, cfg.MinPts)
	})

	timeStage(cfg.Logger, "identify_cluster", func() {
		IdentifyClusters(g, cfg.NumThreads)
	})

	return newResult(g), nil
}

// newResult snapshots a finalized, classified, and clustered Graph into
// a Result.
func newResult(g *Graph) *Result {
	n := g.Len()
	r := &Result{
		ClusterIDs: make([]int32, n),
		Membership: make([]Membership, n),
	}

	var maxCluster int32 = -1
	for i := 0; i < n; i++ {
		id := g.ClusterID(i)
		r.ClusterIDs[i] = id
		r.Membership[i] = g.Membership(i)
		if id > maxCluster {
			maxCluster = id
		}
	}
	r.NumClusters = int(maxCluster + 1)
	return r
}
