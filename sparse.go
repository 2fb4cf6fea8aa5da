package gdbscan

// sparseRow is one vertex's temporary adjacency in the sparse shape: a
// growable sequence of neighbor indices, preferred over bitsetRow for
// low-density graphs where most of the bitset's words would be zero.
type sparseRow []int32

// append adds v as a neighbor.
func (r *sparseRow) append(v int) {
	*r = append(*r, int32(v))
}

func (r sparseRow) degree() int {
	return len(r)
}
