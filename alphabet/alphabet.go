package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by this package.
var (
	// ErrUnknownAlphabet is returned for an unrecognized alphabet name.
	ErrUnknownAlphabet = errors.New("alphabet: unknown alphabet")
	// ErrUnknownChar is returned when a sequence character has no profile.
	ErrUnknownChar = errors.New("alphabet: unknown character")
	// ErrBadShape is returned when a profile matrix does not fit the alphabet.
	ErrBadShape = errors.New("alphabet: profile shape does not match alphabet")
)

// Names of the built-in alphabets accepted by New.
const (
	Nuc      = "nuc"       // A C G T plus the gap state
	NucNogap = "nuc_nogap" // A C G T without the gap state
)

const gapChar = '-'

// Alphabet is an immutable, ordered nucleotide character set.
type Alphabet struct {
	name  string
	chars []byte
	index map[byte]int
}

// New returns the built-in alphabet registered under name, either Nuc or
// NucNogap.
func New(name string) (Alphabet, error) {
	var chars []byte
	switch name {
	case Nuc:
		chars = []byte{'A', 'C', 'G', 'T', gapChar}
	case NucNogap:
		chars = []byte{'A', 'C', 'G', 'T'}
	default:
		return Alphabet{}, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}

	index := make(map[byte]int, len(chars))
	for i, c := range chars {
		index[c] = i
	}

	return Alphabet{name: name, chars: chars, index: index}, nil
}

// Name reports the registered name of the alphabet.
func (a Alphabet) Name() string { return a.name }

// Len reports the number of states.
func (a Alphabet) Len() int { return len(a.chars) }

// Chars returns a copy of the state characters in alphabet order.
func (a Alphabet) Chars() []byte {
	out := make([]byte, len(a.chars))
	copy(out, a.chars)

	return out
}

// Index reports the position of c, case-insensitively.
func (a Alphabet) Index(c byte) (int, bool) {
	i, ok := a.index[upper(c)]
	return i, ok
}

// Contains reports whether c is a state character.
func (a Alphabet) Contains(c byte) bool {
	_, ok := a.Index(c)
	return ok
}

// GapIndex reports the position of the gap state, if the alphabet has one.
func (a Alphabet) GapIndex() (int, bool) {
	i, ok := a.index[gapChar]
	return i, ok
}

// String renders the state characters in order, e.g. "ACGT-".
func (a Alphabet) String() string { return string(a.chars) }

// upper folds ASCII lowercase onto uppercase.
func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}
