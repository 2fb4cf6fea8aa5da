package gdbscan

import (
	"bufio"
	"io"
	"strconv"
)

// ReadPoints parses a whitespace-separated point file: a first token N,
// then N records of three tokens each, "index x y", where index is an
// integer in [0, N) and x, y are single-precision floats. Records may
// appear in any order; indices must cover [0, N) exactly.
//
// Fails fast with a typed *InputError on any malformed token, duplicate
// or out-of-range index, or a short read.
func ReadPoints(r io.Reader) (*PointSet, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1<<20)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", inputError("reading %s: %v", what, err)
			}
			return "", inputError("unexpected end of input while reading %s", what)
		}
		return scanner.Text(), nil
	}

	nTok, err := next("point count N")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(nTok)
	if err != nil {
		return nil, inputError("point count N: not an integer: %q", nTok)
	}
	if n < 0 {
		return nil, inputError("point count N must be >= 0, got %d", n)
	}

	points := NewPointSet(n)
	seen := make([]bool, n)

	for i := 0; i < n; i++ {
		idxTok, err := next("record index")
		if err != nil {
			return nil, err
		}
		idx, err := strconv.Atoi(idxTok)
		if err != nil {
			return nil, inputError("record %d: index not an integer: %q", i, idxTok)
		}
		if idx < 0 || idx >= n {
			return nil, inputError("record %d: index %d out of range [0, %d)", i, idx, n)
		}
		if seen[idx] {
			return nil, inputError("record %d: duplicate index %d", i, idx)
		}

		xTok, err := next("x coordinate")
		if err != nil {
			return nil, err
		}
		x, err := strconv.ParseFloat(xTok, 32)
		if err != nil {
			return nil, inputError("record %d: x coordinate not a float: %q", i, xTok)
		}

		yTok, err := next("y coordinate")
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(yTok, 32)
		if err != nil {
			return nil, inputError("record %d: y coordinate not a float: %q", i, yTok)
		}

		points.Set(idx, float32(x), float32(y))
		seen[idx] = true
	}

	return points, nil
}
