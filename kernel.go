package gdbscan

// candidateBlock holds 8 consecutive candidate points' coordinates,
// mirroring an 8-wide vector register loaded per iteration. Go has no
// portable SIMD intrinsics, so testBlock8 below is the scalar
// equivalent: same data shape, same batch size, same comparison-then-mask
// structure, just without a hardware vector unit.
type candidateBlock struct {
	x, y [8]float32
}

// loadBlock8 reads the 8 candidates starting at v0 from a padded
// PointSet. v0 must be a multiple of 8 and v0+7 must be within the padded
// (not necessarily logical) length of p's coordinate arrays, which
// NewPointSet guarantees for any v0 < len(p.x).
func loadBlock8(p *PointSet, v0 int) candidateBlock {
	var b candidateBlock
	copy(b.x[:], p.x[v0:v0+8])
	copy(b.y[:], p.y[v0:v0+8])
	return b
}

// testBlock8 compares 8 candidate points against (ux, uy) and returns an
// 8-bit mask, bit k set when candidate k is within sqRadius. Candidates
// past N or equal to u are the caller's responsibility to discard via an
// index check: padding lanes are legal to read, but spurious hits from
// them must be masked out by the caller's index-range check, not by this
// kernel.
func testBlock8(ux, uy float32, b candidateBlock, sqRadius float32) uint8 {
	var mask uint8
	for k := 0; k < 8; k++ {
		dx := ux - b.x[k]
		dy := uy - b.y[k]
		if dx*dx+dy*dy <= sqRadius {
			mask |= 1 << uint(k)
		}
	}
	return mask
}
