package readhash

import (
	"github.com/grailbio/base/simd"
)

// iupacComp maps an ASCII IUPAC base to its complement. Lower-case input
// complements to upper case; anything that is not an IUPAC code maps to 'N',
// the same way a 4-bit .bam seq field would store it.
var iupacComp [256]byte

func init() {
	for i := range iupacComp {
		iupacComp[i] = 'N'
	}
	for _, p := range [...][2]byte{
		{'A', 'T'}, {'C', 'G'}, {'M', 'K'}, {'R', 'Y'},
		{'W', 'W'}, {'S', 'S'}, {'B', 'V'}, {'D', 'H'},
		{'N', 'N'},
	} {
		iupacComp[p[0]], iupacComp[p[1]] = p[1], p[0]
		iupacComp[p[0]|0x20], iupacComp[p[1]|0x20] = p[1], p[0]
	}
	iupacComp['='] = '='
}

// ReverseComplement writes the reverse complement of src to dst. It panics
// if len(dst) != len(src).
func ReverseComplement(dst, src []byte) {
	n := len(src)
	if len(dst) != n {
		panic("ReverseComplement requires len(dst) == len(src).")
	}
	for idx, invIdx := 0, n-1; idx != n; idx, invIdx = idx+1, invIdx-1 {
		dst[idx] = iupacComp[src[invIdx]]
	}
}

// reverseRead returns freshly allocated copies of seq and qual flipped back to
// sequencing orientation.
func reverseRead(seq, qual []byte) (rseq, rqual []byte) {
	rseq = make([]byte, len(seq))
	ReverseComplement(rseq, seq)
	if len(qual) > 0 {
		rqual = make([]byte, len(qual))
		simd.Reverse8(rqual, qual)
	}
	return rseq, rqual
}
