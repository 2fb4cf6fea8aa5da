// Command gdbscan runs G-DBSCAN clustering over a whitespace-separated
// point file and prints each point's cluster id and membership.
//
// Usage:
//
//	gdbscan -f points.txt -min-pts 4 -radius 1.5 [-threads N] [-strategy auto|bitset|sparse]
//
// Grounded in other_examples/Tingshow-liu-Cluster-BFS-Golang__main.go's
// flag-driven file-loading shape, and in the original C++ Solver's
// constructor arguments (input path, min_pts, radius, num_threads).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/wiluen/gdbscan"
)

func main() {
	var (
		path       = flag.String("f", "", "path to the input point file")
		minPts     = flag.Int("min-pts", 4, "minimum neighbor count for a Core point")
		radius     = flag.Float64("radius", 1.0, "clustering radius")
		numThreads = flag.Int("threads", runtime.NumCPU(), "worker count for parallel stages")
		strategy   = flag.String("strategy", "auto", "adjacency strategy: auto, bitset, or sparse")
		verbose    = flag.Bool("v", false, "log per-stage timings to stderr")
	)
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: gdbscan -f points.txt -min-pts N -radius R [-threads N] [-strategy auto|bitset|sparse] [-v]")
		os.Exit(1)
	}

	strat, err := parseStrategy(*strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdbscan: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdbscan: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	points, err := gdbscan.ReadPoints(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdbscan: %v\n", err)
		os.Exit(1)
	}

	cfg := gdbscan.DefaultConfig()
	cfg.MinPts = *minPts
	cfg.Radius = *radius
	cfg.NumThreads = *numThreads
	cfg.AdjacencyStrategy = strat
	if *verbose {
		cfg.Logger = gdbscan.StdLogger{L: log.New(os.Stderr, "", log.LstdFlags)}
	}

	result, err := gdbscan.Run(points, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gdbscan: %v\n", err)
		os.Exit(1)
	}

	w := os.Stdout
	for i, id := range result.ClusterIDs {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i, id, result.Membership[i])
	}
	fmt.Fprintf(os.Stderr, "gdbscan: %d clusters over %d points\n", result.NumClusters, points.Len())
}

func parseStrategy(s string) (gdbscan.AdjacencyStrategy, error) {
	switch s {
	case "auto", "":
		return gdbscan.AdjacencyAuto, nil
	case "bitset":
		return gdbscan.AdjacencyBitset, nil
	case "sparse":
		return gdbscan.AdjacencySparse, nil
	default:
		return 0, fmt.Errorf("unrecognized -strategy %q (want auto, bitset, or sparse)", s)
	}
}
