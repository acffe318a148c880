package matops

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Minimum returns the element-wise minimum of a and b.
// It panics with mat.ErrShape when the shapes differ.
func Minimum(a, b mat.Matrix) *mat.Dense {
	return zip(a, b, math.Min)
}

// Maximum returns the element-wise maximum of a and b.
// It panics with mat.ErrShape when the shapes differ.
func Maximum(a, b mat.Matrix) *mat.Dense {
	return zip(a, b, math.Max)
}

// zip pairs two equally shaped matrices element by element through fn.
func zip(a, b mat.Matrix, fn func(x, y float64) float64) *mat.Dense {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		panic(mat.ErrShape)
	}

	out := mat.NewDense(ar, ac, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			out.Set(i, j, fn(a.At(i, j), b.At(i, j)))
		}
	}

	return out
}

// Clamp returns a copy of m with every element forced into [lo, hi].
func Clamp(m mat.Matrix, lo, hi float64) *mat.Dense {
	return applyCopy(m, func(v float64) float64 { return min(max(v, lo), hi) })
}

// ClampMin returns a copy of m with every element raised to at least lo.
func ClampMin(m mat.Matrix, lo float64) *mat.Dense {
	return applyCopy(m, func(v float64) float64 { return max(v, lo) })
}

// ClampMax returns a copy of m with every element lowered to at most hi.
func ClampMax(m mat.Matrix, hi float64) *mat.Dense {
	return applyCopy(m, func(v float64) float64 { return min(v, hi) })
}

// ClampVec returns a copy of v with every element forced into [lo, hi].
func ClampVec(v mat.Vector, lo, hi float64) *mat.VecDense {
	return applyCopyVec(v, func(x float64) float64 { return min(max(x, lo), hi) })
}

// ClampMinVec returns a copy of v with every element raised to at least lo.
func ClampMinVec(v mat.Vector, lo float64) *mat.VecDense {
	return applyCopyVec(v, func(x float64) float64 { return max(x, lo) })
}

// ClampMaxVec returns a copy of v with every element lowered to at most hi.
func ClampMaxVec(v mat.Vector, hi float64) *mat.VecDense {
	return applyCopyVec(v, func(x float64) float64 { return min(x, hi) })
}

func applyCopy(m mat.Matrix, fn func(float64) float64) *mat.Dense {
	out := mat.DenseCopyOf(m)
	out.Apply(func(_, _ int, v float64) float64 { return fn(v) }, out)

	return out
}

func applyCopyVec(v mat.Vector, fn func(float64) float64) *mat.VecDense {
	out := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		out.SetVec(i, fn(v.AtVec(i)))
	}

	return out
}
