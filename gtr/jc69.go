package gtr

import "github.com/gtonkinhill/treetime/alphabet"

// JC69 returns the Jukes-Cantor 1969 model over the gapped nucleotide
// alphabet: uniform equilibrium frequencies and equal attenuation rates
// between all states.
func JC69() (*GTR, error) {
	a, err := alphabet.New(alphabet.Nuc)
	if err != nil {
		return nil, err
	}
	pm, err := alphabet.FromAlphabet(a)
	if err != nil {
		return nil, err
	}

	return New(&Params{Alphabet: a, Profiles: pm, Mu: 1})
}
