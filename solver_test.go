package gdbscan

import "testing"

func pointSetFrom(coords [][2]float32) *PointSet {
	p := NewPointSet(len(coords))
	for i, c := range coords {
		p.Set(i, c[0], c[1])
	}
	return p
}

func TestRun_EmptyNeighborhoodIsAllNoise(t *testing.T) {
	// Four points, each farther than Radius from every other.
	points := pointSetFrom([][2]float32{{0, 0}, {100, 0}, {0, 100}, {-100, -100}})
	cfg := DefaultConfig()
	cfg.MinPts = 1
	cfg.Radius = 1

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumClusters != 0 {
		t.Errorf("NumClusters = %d, want 0", result.NumClusters)
	}
	for i, m := range result.Membership {
		if m != Noise {
			t.Errorf("point %d membership = %v, want Noise", i, m)
		}
		if result.ClusterIDs[i] != -1 {
			t.Errorf("point %d cluster = %d, want -1", i, result.ClusterIDs[i])
		}
	}
}

func TestRun_SingleClusterAllCore(t *testing.T) {
	// A tight 3x3 grid with spacing 1; radius 1.5 makes every point
	// reach at least 3 neighbors (its axis-aligned and diagonal
	// neighbors), so with minPts=3 every point qualifies as Core.
	var coords [][2]float32
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			coords = append(coords, [2]float32{float32(i), float32(j)})
		}
	}
	points := pointSetFrom(coords)
	cfg := DefaultConfig()
	cfg.MinPts = 3
	cfg.Radius = 1.5

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumClusters != 1 {
		t.Fatalf("NumClusters = %d, want 1", result.NumClusters)
	}
	for i, m := range result.Membership {
		if m != Core {
			t.Errorf("point %d membership = %v, want Core", i, m)
		}
		if result.ClusterIDs[i] != 0 {
			t.Errorf("point %d cluster = %d, want 0", i, result.ClusterIDs[i])
		}
	}
}

func TestRun_BorderRelabel(t *testing.T) {
	// A dense cluster of 4 mutually-close points (Core at minPts=3) plus
	// one point close only to the cluster's edge (degree 1 -> Noise by
	// degree, but reachable -> relabeled Border).
	points := pointSetFrom([][2]float32{
		{0, 0}, {1, 0}, {0, 1}, {1, 1}, // dense square
		{2.4, 0}, // within radius of {1,0} only
	})
	cfg := DefaultConfig()
	cfg.MinPts = 3
	cfg.Radius = 1.5

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Membership[4] != Border {
		t.Errorf("point 4 membership = %v, want Border", result.Membership[4])
	}
	if result.ClusterIDs[4] != result.ClusterIDs[0] {
		t.Errorf("point 4 cluster = %d, want same cluster as point 0 (%d)", result.ClusterIDs[4], result.ClusterIDs[0])
	}
}

func TestRun_TwoDisjointClusters(t *testing.T) {
	points := pointSetFrom([][2]float32{
		{0, 0}, {1, 0}, {0, 1}, // cluster A
		{50, 50}, {51, 50}, {50, 51}, // cluster B, far away
	})
	cfg := DefaultConfig()
	cfg.MinPts = 2
	cfg.Radius = 1.5

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.NumClusters != 2 {
		t.Fatalf("NumClusters = %d, want 2", result.NumClusters)
	}
	if result.ClusterIDs[0] != result.ClusterIDs[1] || result.ClusterIDs[1] != result.ClusterIDs[2] {
		t.Error("points 0,1,2 should share a cluster")
	}
	if result.ClusterIDs[3] != result.ClusterIDs[4] || result.ClusterIDs[4] != result.ClusterIDs[5] {
		t.Error("points 3,4,5 should share a cluster")
	}
	if result.ClusterIDs[0] == result.ClusterIDs[3] {
		t.Error("the two groups should be in different clusters")
	}
}

func TestRun_SelfPairExcludedFromDegree(t *testing.T) {
	// Single point: its own r-ball (excluding itself) is empty, so it
	// must be Noise even though it trivially "contains itself."
	points := pointSetFrom([][2]float32{{5, 5}})
	cfg := DefaultConfig()
	cfg.MinPts = 1
	cfg.Radius = 10

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Membership[0] != Noise {
		t.Errorf("membership = %v, want Noise (self-pair must not count toward degree)", result.Membership[0])
	}
}

func TestRun_PointCountNotMultipleOf8(t *testing.T) {
	// 11 points, not a multiple of 8, exercising the padded-block tail.
	var coords [][2]float32
	for i := 0; i < 11; i++ {
		coords = append(coords, [2]float32{float32(i), 0})
	}
	points := pointSetFrom(coords)
	cfg := DefaultConfig()
	cfg.MinPts = 2
	cfg.Radius = 1.5

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.ClusterIDs) != 11 || len(result.Membership) != 11 {
		t.Fatalf("result length = %d/%d, want 11/11", len(result.ClusterIDs), len(result.Membership))
	}
	// A linear chain with spacing 1 and radius 1.5 connects every point
	// into a single cluster.
	if result.NumClusters != 1 {
		t.Errorf("NumClusters = %d, want 1", result.NumClusters)
	}
}

func TestRun_EmptyPointSet(t *testing.T) {
	points := NewPointSet(0)
	cfg := DefaultConfig()
	cfg.MinPts = 1
	cfg.Radius = 1

	result, err := Run(points, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.ClusterIDs) != 0 || result.NumClusters != 0 {
		t.Errorf("expected empty result, got %d cluster ids, %d clusters", len(result.ClusterIDs), result.NumClusters)
	}
}

func TestRun_InvalidConfigReturnsError(t *testing.T) {
	points := pointSetFrom([][2]float32{{0, 0}})
	cfg := DefaultConfig()
	cfg.MinPts = 0 // invalid
	cfg.Radius = 1

	_, err := Run(points, cfg)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestRun_DeterministicAcrossThreadCounts(t *testing.T) {
	var coords [][2]float32
	for i := 0; i < 40; i++ {
		coords = append(coords, [2]float32{float32(i % 7), float32(i / 7)})
	}
	points := pointSetFrom(coords)

	var reference *Result
	for _, threads := range []int{1, 2, 3, 8} {
		cfg := DefaultConfig()
		cfg.MinPts = 3
		cfg.Radius = 1.5
		cfg.NumThreads = threads

		result, err := Run(points, cfg)
		if err != nil {
			t.Fatalf("threads=%d: Run: %v", threads, err)
		}
		if reference == nil {
			reference = result
			continue
		}
		if result.NumClusters != reference.NumClusters {
			t.Errorf("threads=%d: NumClusters = %d, want %d", threads, result.NumClusters, reference.NumClusters)
		}
		for i := range result.ClusterIDs {
			if result.ClusterIDs[i] != reference.ClusterIDs[i] {
				t.Errorf("threads=%d: ClusterIDs[%d] = %d, want %d", threads, i, result.ClusterIDs[i], reference.ClusterIDs[i])
			}
			if result.Membership[i] != reference.Membership[i] {
				t.Errorf("threads=%d: Membership[%d] = %v, want %v", threads, i, result.Membership[i], reference.Membership[i])
			}
		}
	}
}
