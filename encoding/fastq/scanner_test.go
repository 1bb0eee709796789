package fastq

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fq = `@NB500956:89:HW2FHBGX2:1:11101:25648:1069 1:N:0:ATCACG
ATACAGGCCTGANCCACTGTGCCCAGNCTANNTNATTANTGAANANAGAATNGTTNTAAATANANNNNNTNTNNNC
+
AAAAAEEEEEEE#EEAEEEEEEEEEE#EEE##E#EEEE#EEEE#E#EEEEE#EEE#EEEAEE#A#####E#E###E
@NB500956:89:HW2FHBGX2:1:11101:13871:1070 1:N:0:ATCACG
CTCAACTCTGAGNCAGACAGAAATACNTTTNNTNTGAGTTACANCNTTCTTTTTCNACATATNCNNNNNTNGNNNT
+
AAAAAEEEEEEE#EEEEEEEEEEEEE#EEE##E#EEEEEEEEE#E#EEEEEEEEE#EAEEEE#A#####E#A###E
@NB500956:89:HW2FHBGX2:1:11101:9975:1070 1:N:0:ATCACG
GAGTAACCACGTNCCCATGGCCACAGNTGANNGNGTCACACCTNANCCGGGAGAGNCAATCCNGNNNNNGNANNNC
+
AAAAAEEEEEEE#EEEEEEEEEAEEE#EEA##E#EEEEEEEE<#E#<EEEEEEEE#<EEEA/#/#####A#E###A
@NB500956:89:HW2FHBGX2:1:11101:20247:1070 1:N:0:ATCACG
GATCGGAAGAGCNCACGTCTGAACTCNAGTNNCNTCCCGATCTNGNATGCCGTCTNCTGCTTNANNNNNANANNNG
+
AAAAAEEEEEEE#EEEEEEEEEEEEE#AEE##E#A////6AE<#E#EEEEEEEEA#A/EE/E#E#####/#E###E
@NB500956:89:HW2FHBGX2:1:11101:17754:1070 1:N:0:ATCACG
CAAGCAACTTACNTTACTTTAGGCTGNAAANNGNCTGCCTGAANTNCCTGCTCACNAATCCCNCNNNNNCNTNNNT
+
AAAAAEEEEEEE#EEAEEEEEEEEEE#EEE##E#EEEEEEEEE#E#EEEEEEEEE#EAEAEA#/#####E#A###E
@NB500956:89:HW2FHBGX2:1:11101:26223:1070 1:N:0:ATCACG
TCAATTTCAGAACTTTTTATTGGTCTNTTCNNGNATTCATCTTNTNCCTGGTTTANTCTTGGNANNNNNTNTNNNT
+
AAAAAEEEEEEEEEEEEEEEEEEEEE#EEA##E#EEEEEEEEE#E#<EAEEEEEE#EEEEEE#E#####E#E###E
`

func stringScanner(s string) *Scanner {
	return NewScanner(strings.NewReader(s))
}

func scanErr(s string) error {
	scan := stringScanner(s)
	var r Read
	for scan.Scan(&r) {
	}
	return scan.Err()
}

func TestFASTQ(t *testing.T) {
	s := stringScanner(fq)
	var r Read
	require.True(t, s.Scan(&r), "%v", s.Err())
	assert.Equal(t, "@NB500956:89:HW2FHBGX2:1:11101:25648:1069 1:N:0:ATCACG", string(r.ID))
	assert.Equal(t, "ATACAGGCCTGANCCACTGTGCCCAGNCTANNTNATTANTGAANANAGAATNGTTNTAAATANANNNNNTNTNNNC", string(r.Seq))
	assert.Equal(t, "+", string(r.Unk))
	assert.Equal(t, "AAAAAEEEEEEE#EEAEEEEEEEEEE#EEE##E#EEEE#EEEE#E#EEEEE#EEE#EEEAEE#A#####E#E###E", string(r.Qual))
	assert.Equal(t, "NB500956:89:HW2FHBGX2:1:11101:25648:1069", string(r.Name()))
	var n int
	for s.Scan(&r) {
		n++
	}
	assert.Equal(t, 5, n)
	assert.NoError(t, s.Err())
	assert.Equal(t, int64(6), s.NumRead())
}

func TestBadFASTQ(t *testing.T) {
	assert.Equal(t, ErrInvalid, scanErr("12312#"))
	assert.Equal(t, ErrShort, scanErr("@1234\n123"))
	assert.Equal(t, ErrShort, scanErr("@1234\nACGT\n+\n"))
	assert.Equal(t, ErrInvalid, scanErr("@1234\nACGT\n-\n!!!!\n"))
	// Sequence and quality lengths differ.
	assert.Equal(t, ErrInvalid, scanErr("@1234\nACGT\n+\n!!!\n"))
	assert.NoError(t, scanErr(""))
}

func TestCRLF(t *testing.T) {
	s := stringScanner("@r1/1\r\nAC\r\n+\r\n!!\r\n")
	var r Read
	require.True(t, s.Scan(&r))
	assert.Equal(t, "AC", string(r.Seq))
	assert.Equal(t, "r1", string(r.Name()))
}

func TestName(t *testing.T) {
	for _, c := range []struct{ id, want string }{
		{"@r1", "r1"},
		{"@r1/1", "r1"},
		{"@r1/2 extra comment", "r1"},
		{"@r1/3", "r1/3"},
		{"@a/b/1", "a/b"},
		{"@r1\tBC:ACGT", "r1"},
		{"r1/2", "r1"},
		{"@", ""},
	} {
		r := Read{ID: []byte(c.id)}
		assert.Equal(t, c.want, string(r.Name()), "id %q", c.id)
	}
}

func TestPairScanner(t *testing.T) {
	r1 := "@p1/1\nACGT\n+\n!!!!\n@p2/1\nTT\n+\n##\n"
	r2 := "@p1/2\nGGCC\n+\nIIII\n@p2/2\nAA\n+\n$$\n"
	s := NewPairScanner(strings.NewReader(r1), strings.NewReader(r2))
	var a, b Read
	var names []string
	for s.Scan(&a, &b) {
		names = append(names, string(a.Name())+"="+string(b.Name()))
	}
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"p1=p1", "p2=p2"}, names)
	assert.Equal(t, int64(2), s.NumRead())

	s = NewPairScanner(strings.NewReader(r1), strings.NewReader("@p1/2\nGGCC\n+\nIIII\n"))
	for s.Scan(&a, &b) {
	}
	assert.Equal(t, ErrDiscordant, s.Err())
}

func TestWriter(t *testing.T) {
	var (
		s = stringScanner(fq)
		b = new(bytes.Buffer)
		w = NewWriter(b)
		r Read
	)
	for s.Scan(&r) {
		require.NoError(t, w.Write(&r))
	}
	require.NoError(t, s.Err())
	require.NoError(t, w.Flush())
	assert.Equal(t, fq, b.String())

	b.Reset()
	w = NewWriter(b)
	require.NoError(t, w.Write(&Read{ID: []byte("@x"), Seq: []byte("A"), Qual: []byte("!")}))
	require.NoError(t, w.Flush())
	assert.Equal(t, "@x\nA\n+\n!\n", b.String())
}
