package alphabet

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gtonkinhill/treetime/matops"
)

// nucProfiles maps every nucleotide character, canonical and IUPAC
// ambiguity code alike, to its per-state weights over A C G T -.
var nucProfiles = map[byte][5]float64{
	'-': {0, 0, 0, 0, 1},
	'A': {1, 0, 0, 0, 0},
	'B': {0, 1, 1, 1, 0},
	'C': {0, 1, 0, 0, 0},
	'D': {1, 0, 1, 1, 0},
	'G': {0, 0, 1, 0, 0},
	'H': {1, 1, 0, 1, 0},
	'K': {0, 0, 1, 1, 0},
	'M': {1, 1, 0, 0, 0},
	'N': {1, 1, 1, 1, 1},
	'R': {1, 0, 1, 0, 0},
	'S': {0, 1, 1, 0, 0},
	'T': {0, 0, 0, 1, 0},
	'V': {1, 1, 1, 0, 0},
	'W': {1, 0, 0, 1, 0},
	'X': {1, 1, 1, 1, 1},
	'Y': {0, 1, 0, 1, 0},
}

// ProfileMap resolves characters to frequency profiles over an alphabet.
type ProfileMap struct {
	alpha Alphabet
	table map[byte][]float64
}

// FromAlphabet builds the canonical profile table for a.
//
// Every state character maps to its one-hot row, the ambiguity codes to
// indicator rows carrying a unit weight on each candidate state. For the
// gapless alphabet the gap column is dropped and the gap character itself
// is not resolvable.
func FromAlphabet(a Alphabet) (ProfileMap, error) {
	switch a.Name() {
	case Nuc, NucNogap:
	default:
		return ProfileMap{}, fmt.Errorf("%w: %q", ErrUnknownAlphabet, a.Name())
	}

	n := a.Len()
	table := make(map[byte][]float64, len(nucProfiles))
	for c, full := range nucProfiles {
		if c == gapChar && n < len(full) {
			continue
		}
		table[c] = append([]float64(nil), full[:n]...)
	}

	return ProfileMap{alpha: a, table: table}, nil
}

// Alphabet returns the alphabet the profiles are laid out over.
func (pm ProfileMap) Alphabet() Alphabet { return pm.alpha }

// Profile returns a copy of the profile registered for c,
// case-insensitively.
func (pm ProfileMap) Profile(c byte) ([]float64, bool) {
	p, ok := pm.table[upper(c)]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), p...), true
}

// SeqToProfile turns a sequence into its L by a site profile matrix, one
// row per sequence position.
//
// Complexity: O(L*a).
func (pm ProfileMap) SeqToProfile(seq []byte) (*mat.Dense, error) {
	if len(seq) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrBadShape)
	}

	out := mat.NewDense(len(seq), pm.alpha.Len(), nil)
	for i, c := range seq {
		p, ok := pm.table[upper(c)]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownChar, c, i)
		}
		out.SetRow(i, p)
	}

	return out, nil
}

// ProfileToSeq reduces a profile matrix back to the most likely sequence,
// taking the first best state on ties.
//
// Complexity: O(L*a).
func (pm ProfileMap) ProfileToSeq(p mat.Matrix) ([]byte, error) {
	r, c := p.Dims()
	if c != pm.alpha.Len() {
		return nil, fmt.Errorf("%w: %d columns for %d states", ErrBadShape, c, pm.alpha.Len())
	}

	best := matops.ArgmaxAxis(p, matops.AxisCol)
	seq := make([]byte, r)
	for i, k := range best {
		seq[i] = pm.alpha.chars[k]
	}

	return seq, nil
}
