// Package gtr implements the general time reversible model of character
// evolution over the alphabets of package alphabet.
//
// A model is assembled by New from equilibrium frequencies Pi and a
// symmetric attenuation matrix W. New normalizes both so that one expected
// substitution happens per unit time, then eigendecomposes the generator
// once; ExpQt, Evolve and PropagateProfile reuse that single decomposition
// for every branch they are evaluated on.
//
// Evolve pushes a site profile forward in time (descendant distributions),
// PropagateProfile pulls it backward (ancestral messages). Both act on
// L by a profile matrices as produced by alphabet.ProfileMap.SeqToProfile.
//
// JC69 provides the classic equal-rates preset.
package gtr
