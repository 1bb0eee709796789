package fasta_test

import (
	"strings"
	"testing"

	"github.com/grailbio/readhash/encoding/fasta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct{ name, seq string }

func scanAll(t *testing.T, data string) ([]record, error) {
	s := fasta.NewScanner(strings.NewReader(data))
	var recs []record
	for s.Scan() {
		recs = append(recs, record{string(s.Name()), string(s.Seq())})
	}
	return recs, s.Err()
}

func TestScan(t *testing.T) {
	tests := []struct {
		data string
		want []record
	}{
		{
			">seq1\nACGTA\nCGTAC\nGT\n>seq2 A viral sequence\nACGT\nACGT\n",
			[]record{{"seq1", "ACGTACGTACGT"}, {"seq2", "ACGTACGT"}},
		},
		{"\n\n>a\r\nAC\r\nGT\r\n\n>b\tx\n", []record{{"a", "ACGT"}, {"b", ""}}},
		{">only\nNNNN", []record{{"only", "NNNN"}}},
		{"", nil},
	}
	for _, tt := range tests {
		got, err := scanAll(t, tt.data)
		require.NoError(t, err, "data %q", tt.data)
		assert.Equal(t, tt.want, got, "data %q", tt.data)
	}
}

func TestScanInvalid(t *testing.T) {
	_, err := scanAll(t, "ACGT\n>a\nAC\n")
	assert.Equal(t, fasta.ErrInvalid, err)
}

func TestNumRead(t *testing.T) {
	s := fasta.NewScanner(strings.NewReader(">a\nA\n>b\nC\n>c\nG\n"))
	for s.Scan() {
	}
	require.NoError(t, s.Err())
	assert.Equal(t, int64(3), s.NumRead())
}
