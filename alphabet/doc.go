// Package alphabet defines nucleotide character sets and the mapping from
// (possibly ambiguous) characters to frequency profiles.
//
// The alphabet package provides:
//
//   - Alphabet, a named ordered character set. New("nuc") yields the five
//     state characters A C G T - (gap included), New("nuc_nogap") the same
//     set without the gap state.
//   - ProfileMap, the character-to-profile table used to turn sequences
//     into site-wise profile matrices and back. Beyond the one-hot rows
//     of the state characters it carries the IUPAC ambiguity codes
//     (B D H K M N R S V W X Y), each carrying a unit weight on every
//     candidate state.
//
// Profiles are rows of length Alphabet.Len() laid out in alphabet order.
// Sequences convert case-insensitively; a character outside the table
// surfaces ErrUnknownChar.
package alphabet
