package alphabet_test

import (
	"fmt"

	"github.com/gtonkinhill/treetime/alphabet"
)

func ExampleProfileMap_SeqToProfile() {
	a, _ := alphabet.New(alphabet.Nuc)
	pm, _ := alphabet.FromAlphabet(a)

	prof, _ := pm.SeqToProfile([]byte("ACr"))
	for i := 0; i < 3; i++ {
		fmt.Println(prof.RawRowView(i))
	}
	// Output:
	// [1 0 0 0 0]
	// [0 1 0 0 0]
	// [1 0 1 0 0]
}

func ExampleProfileMap_ProfileToSeq() {
	a, _ := alphabet.New(alphabet.Nuc)
	pm, _ := alphabet.FromAlphabet(a)

	prof, _ := pm.SeqToProfile([]byte("ACGT-n"))
	seq, _ := pm.ProfileToSeq(prof)
	fmt.Println(string(seq))
	// Output:
	// ACGT-A
}
