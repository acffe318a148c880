package gtr

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/gtonkinhill/treetime/alphabet"
)

// Sentinel errors returned by this package.
var (
	// ErrEmptyAlphabet is returned by New when no alphabet is supplied.
	ErrEmptyAlphabet = errors.New("gtr: empty alphabet")
	// ErrNonzeroDiagonal reports an attenuation matrix whose diagonal was
	// not cleared before eigendecomposition.
	ErrNonzeroDiagonal = errors.New("gtr: attenuation matrix diagonal is not zero")
	// ErrEigenFailed reports a failed eigendecomposition of the generator.
	ErrEigenFailed = errors.New("gtr: eigendecomposition failed")
)

// Params collects the inputs of New. W and Pi may be left nil to request
// the all-ones matrix and the uniform vector.
type Params struct {
	Alphabet alphabet.Alphabet
	Profiles alphabet.ProfileMap

	// Mu scales the overall substitution rate.
	Mu float64
	// W holds the symmetric attenuation rates between states.
	W *mat.Dense
	// Pi holds the equilibrium state frequencies.
	Pi *mat.VecDense
}

// GTR is a general time reversible substitution model with its generator
// eigendecomposed once at construction time.
//
// The fields are exported for inspection and must be treated as read-only;
// a GTR is safe for concurrent use as long as nothing mutates them.
type GTR struct {
	Alphabet alphabet.Alphabet
	Profiles alphabet.ProfileMap

	// Mu is the substitution rate after normalization.
	Mu float64
	// W is the symmetrized attenuation matrix scaled to unit average rate.
	W *mat.Dense
	// Pi is the equilibrium distribution, normalized to sum 1.
	Pi *mat.VecDense

	// Eigvals holds the generator eigenvalues in ascending order; the
	// stationary mode sits last, at zero. V and VInv map profiles into and
	// out of the eigenspace.
	Eigvals []float64
	V       *mat.Dense
	VInv    *mat.Dense
}
