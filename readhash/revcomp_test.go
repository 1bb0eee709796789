package readhash

import (
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReverseComplement(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"A", "T"},
		{"ACGT", "ACGT"},
		{"AACG", "CGTT"},
		{"MRWSYKVHDBN", "NVHDBMRSWYK"},
		{"acgtn", "NACGT"},
		{"A=C", "G=T"},
		{"AX.", "NNT"},
	}
	for _, test := range tests {
		got := make([]byte, len(test.in))
		ReverseComplement(got, []byte(test.in))
		expect.EQ(t, string(got), test.want, "input %q", test.in)
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	const alphabet = "ACGTNMRWSYKVHDB="
	rng := rand.New(rand.NewSource(0))
	for iter := 0; iter < 100; iter++ {
		src := make([]byte, rng.Intn(200))
		for i := range src {
			src[i] = alphabet[rng.Intn(len(alphabet))]
		}
		once := make([]byte, len(src))
		twice := make([]byte, len(src))
		ReverseComplement(once, src)
		ReverseComplement(twice, once)
		expect.EQ(t, string(twice), string(src))
	}
}

func TestReverseRead(t *testing.T) {
	seq, qual := reverseRead([]byte("AAC"), []byte("123"))
	expect.EQ(t, string(seq), "GTT")
	expect.EQ(t, string(qual), "321")

	seq, qual = reverseRead([]byte("AAC"), nil)
	expect.EQ(t, string(seq), "GTT")
	expect.EQ(t, len(qual), 0)
}
