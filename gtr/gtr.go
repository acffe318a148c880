package gtr

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/gtonkinhill/treetime/matops"
)

// New assembles a model from p.
//
// A nil or wrongly sized Pi falls back to the uniform vector, a nil or
// wrongly sized W to the all-ones matrix. Pi is normalized to sum 1; W gets
// its diagonal cleared and is symmetrized as (W+Wᵀ)/2, then both W and Mu
// are rescaled by the average transition rate so that one substitution is
// expected per unit time. The generator is eigendecomposed once.
//
// Complexity: O(n³) for an n-state alphabet.
func New(p *Params) (*GTR, error) {
	if p == nil {
		p = &Params{}
	}
	n := p.Alphabet.Len()
	if n == 0 {
		return nil, ErrEmptyAlphabet
	}

	// 1) Equilibrium frequencies: default to uniform, normalize to sum 1.
	pi := mat.NewVecDense(n, nil)
	if p.Pi != nil && p.Pi.Len() == n {
		pi.CopyVec(p.Pi)
	} else {
		for i := 0; i < n; i++ {
			pi.SetVec(i, 1)
		}
	}
	pi.ScaleVec(1/mat.Sum(pi), pi)

	// 2) Attenuation rates: default to all ones, clear the diagonal and
	//    symmetrize.
	w := mat.NewDense(n, n, nil)
	if r, c := dims(p.W); r == n && c == n {
		w.Copy(p.W)
	} else {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				w.Set(i, j, 1)
			}
		}
	}
	for i := 0; i < n; i++ {
		w.Set(i, i, 0)
	}
	var sym mat.Dense
	sym.Add(w, w.T())
	sym.Scale(0.5, &sym)

	// 3) Rescale so the expected substitution rate at equilibrium is 1.
	gap := -1
	if gi, ok := p.Alphabet.GapIndex(); ok {
		gap = gi
	}
	avg := AvgTransition(&sym, pi, gap)
	sym.Scale(1/avg, &sym)

	// 4) Eigendecompose the generator once, up front.
	eigvals, v, vInv, err := eigSingleSite(&sym, pi)
	if err != nil {
		return nil, err
	}

	return &GTR{
		Alphabet: p.Alphabet,
		Profiles: p.Profiles,
		Mu:       p.Mu * avg,
		W:        &sym,
		Pi:       pi,
		Eigvals:  eigvals,
		V:        v,
		VInv:     vInv,
	}, nil
}

// dims reports the dimensions of m, or zeros for a nil matrix.
func dims(m *mat.Dense) (r, c int) {
	if m == nil {
		return 0, 0
	}

	return m.Dims()
}

// AvgTransition returns the expected transition rate πᵀWπ. A non-negative
// gapIndex discounts the gap column's contribution and renormalizes by the
// non-gap mass, as gaps model indels rather than substitutions.
//
// Complexity: O(n²).
func AvgTransition(w mat.Matrix, pi mat.Vector, gapIndex int) float64 {
	avg := mat.Inner(pi, w, pi)
	if gapIndex < 0 {
		return avg
	}

	var toGap float64
	for i := 0; i < pi.Len(); i++ {
		toGap += pi.AtVec(i) * w.At(i, gapIndex)
	}
	pg := pi.AtVec(gapIndex)

	return (avg - toGap*pg) / (1 - pg)
}

// eigSingleSite eigendecomposes the generator defined by w and pi. The
// similarity transform diag(√π)·Q·diag(1/√π) is symmetric, so the
// decomposition stays real with orthonormal eigenvectors. Eigenvalues come
// back ascending with the stationary mode last, at zero; v and vInv are
// rescaled so each eigenvector has unit one-norm after the back-transform.
//
// w must carry a zero diagonal.
func eigSingleSite(w mat.Matrix, pi mat.Vector) (eigvals []float64, v, vInv *mat.Dense, err error) {
	n := pi.Len()

	var trace float64
	for i := 0; i < n; i++ {
		trace += w.At(i, i)
	}
	if math.Abs(trace) >= 1e-10 {
		return nil, nil, nil, ErrNonzeroDiagonal
	}

	sqrtPi := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		sqrtPi.SetVec(i, math.Sqrt(pi.AtVec(i)))
	}

	var sym mat.Dense
	sym.MulElem(w, matops.Outer(sqrtPi, sqrtPi))
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += w.At(i, j) * pi.AtVec(j)
		}
		sym.Set(i, i, -s)
	}

	var es mat.EigenSym
	if !es.Factorize(mat.NewSymDense(n, sym.RawMatrix().Data), true) {
		return nil, nil, nil, ErrEigenFailed
	}
	eigvals = es.Values(nil)

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	oneNorm := make([]float64, n)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			oneNorm[k] += math.Abs(vecs.At(i, k)) * sqrtPi.AtVec(i)
		}
	}

	v = mat.NewDense(n, n, nil)
	vInv = mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			v.Set(i, k, vecs.At(i, k)*sqrtPi.AtVec(i)/oneNorm[k])
			vInv.Set(k, i, vecs.At(i, k)*oneNorm[k]/sqrtPi.AtVec(i))
		}
	}

	return eigvals, v, vInv, nil
}

// ExpQt returns the transition matrix exp(Mu·t·Q) rebuilt from the stored
// eigendecomposition, entries clamped at zero.
//
// Complexity: O(n³).
func (g *GTR) ExpQt(t float64) *mat.Dense {
	n := len(g.Eigvals)
	decay := make([]float64, n)
	for k, lambda := range g.Eigvals {
		decay[k] = math.Exp(g.Mu * t * lambda)
	}

	var tmp, qt mat.Dense
	tmp.Mul(mat.NewDiagDense(n, decay), g.VInv)
	qt.Mul(g.V, &tmp)

	return matops.ClampMin(&qt, 0)
}

// Evolve pushes profile forward in time by t: row i of the result holds the
// state distribution of a descendant of site i after time t. With returnLog
// the result is reported element-wise in natural log space.
//
// Complexity: O(L*n² + n³) for an L-site profile.
func (g *GTR) Evolve(profile mat.Matrix, t float64, returnLog bool) *mat.Dense {
	qt := g.ExpQt(t)

	var res mat.Dense
	res.Mul(profile, qt.T())

	return logIf(&res, returnLog)
}

// PropagateProfile pulls profile backward in time by t: row i of the result
// holds the ancestral message for site i at time t before the observation.
// With returnLog the result is reported element-wise in natural log space.
//
// Complexity: O(L*n² + n³) for an L-site profile.
func (g *GTR) PropagateProfile(profile mat.Matrix, t float64, returnLog bool) *mat.Dense {
	qt := g.ExpQt(t)

	var res mat.Dense
	res.Mul(profile, qt)

	return logIf(&res, returnLog)
}

func logIf(m *mat.Dense, logSpace bool) *mat.Dense {
	if logSpace {
		m.Apply(func(_, _ int, v float64) float64 { return math.Log(v) }, m)
	}

	return m
}
