package matops

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Axis selects the dimension a reduction collapses.
type Axis int

const (
	// AxisRow collapses the row dimension: results hold one entry per column.
	AxisRow Axis = iota
	// AxisCol collapses the column dimension: results hold one entry per row.
	AxisCol
)

// ArgminAxis reports, per lane of the kept dimension, the index of the
// smallest element along the collapsed axis. Ties resolve to the lowest
// index.
//
// Complexity: O(r*c).
func ArgminAxis(m mat.Matrix, axis Axis) []int {
	idx, _ := foldAxis(m, axis, func(v, best float64) bool { return v < best })
	return idx
}

// ArgmaxAxis reports, per lane of the kept dimension, the index of the
// largest element along the collapsed axis. Ties resolve to the lowest
// index.
//
// Complexity: O(r*c).
func ArgmaxAxis(m mat.Matrix, axis Axis) []int {
	idx, _ := foldAxis(m, axis, func(v, best float64) bool { return v > best })
	return idx
}

// MinAxis returns the smallest element along the collapsed axis, one value
// per lane of the kept dimension.
//
// Complexity: O(r*c).
func MinAxis(m mat.Matrix, axis Axis) []float64 {
	_, val := foldAxis(m, axis, func(v, best float64) bool { return v < best })
	return val
}

// MaxAxis returns the largest element along the collapsed axis, one value
// per lane of the kept dimension.
//
// Complexity: O(r*c).
func MaxAxis(m mat.Matrix, axis Axis) []float64 {
	_, val := foldAxis(m, axis, func(v, best float64) bool { return v > best })
	return val
}

// foldAxis scans m along the collapsed axis and keeps, per lane, the first
// element for which better(candidate, best) holds.
func foldAxis(m mat.Matrix, axis Axis, better func(v, best float64) bool) (idx []int, val []float64) {
	r, c := m.Dims()

	switch axis {
	case AxisRow:
		idx, val = make([]int, c), make([]float64, c)
		for j := 0; j < c; j++ {
			at, best := 0, m.At(0, j)
			for i := 1; i < r; i++ {
				if v := m.At(i, j); better(v, best) {
					at, best = i, v
				}
			}
			idx[j], val[j] = at, best
		}
	case AxisCol:
		idx, val = make([]int, r), make([]float64, r)
		for i := 0; i < r; i++ {
			at, best := 0, m.At(i, 0)
			for j := 1; j < c; j++ {
				if v := m.At(i, j); better(v, best) {
					at, best = j, v
				}
			}
			idx[i], val[i] = at, best
		}
	default:
		panic("matops: invalid axis")
	}

	return idx, val
}

// CumsumAxis returns the running sums of m along the collapsed axis: with
// AxisRow every row accumulates all rows above it, with AxisCol every
// element accumulates everything to its left in the same row.
//
// Complexity: O(r*c).
func CumsumAxis(m mat.Matrix, axis Axis) *mat.Dense {
	out := mat.DenseCopyOf(m)
	r, _ := out.Dims()

	switch axis {
	case AxisRow:
		for i := 1; i < r; i++ {
			floats.Add(out.RawRowView(i), out.RawRowView(i-1))
		}
	case AxisCol:
		for i := 0; i < r; i++ {
			row := out.RawRowView(i)
			floats.CumSum(row, row)
		}
	default:
		panic("matops: invalid axis")
	}

	return out
}

// Outer returns the outer product of x and y, the len(x) by len(y) matrix
// with out[i,j] = x[i]*y[j].
//
// Complexity: O(len(x)*len(y)).
func Outer(x, y mat.Vector) *mat.Dense {
	var out mat.Dense
	out.Outer(1, x, y)

	return &out
}
