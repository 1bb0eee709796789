// Package fasta reads FASTA files one record at a time. FASTA files consist
// of a number of named sequences that may be interrupted by newlines. For
// example:
//
// >read1
// ACGTAC
// GAGGAC
// GCG
// >read2 sample=foo
// ACGT
//
// Sequence names are the stretch of characters immediately after '>' up to
// the first whitespace. Text after it is ignored: '>read2 sample=foo' becomes
// 'read2'.
package fasta

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// maxLineLen bounds a single line. Unwrapped genome-scale sequences can be
// long.
const maxLineLen = 1 << 30

// ErrInvalid is returned when sequence data appears before the first
// header line.
var ErrInvalid = errors.New("invalid FASTA file")

// Scanner streams records from FASTA data. Scanners are not threadsafe.
type Scanner struct {
	b       *bufio.Scanner
	err     error
	done    bool
	pending bool // b holds a header line not yet consumed
	name    []byte
	seq     []byte
	nRead   int64
}

// NewScanner constructs a Scanner that reads FASTA data from r.
func NewScanner(r io.Reader) *Scanner {
	b := bufio.NewScanner(r)
	b.Buffer(nil, maxLineLen)
	return &Scanner{b: b}
}

// Scan reads the next record. It returns false at the end of the input or
// on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	if !s.pending && !s.nextHeader() {
		return false
	}
	s.pending = false
	s.name = append(s.name[:0], headerName(s.b.Bytes())...)
	s.seq = s.seq[:0]
	for s.b.Scan() {
		line := s.b.Bytes()
		if len(line) > 0 && line[0] == '>' {
			s.pending = true
			break
		}
		s.seq = append(s.seq, bytes.TrimSpace(line)...)
	}
	if !s.pending {
		if err := s.b.Err(); err != nil {
			s.err = errors.Wrap(err, "couldn't read FASTA data")
			return false
		}
		s.done = true
	}
	s.nRead++
	return true
}

// nextHeader advances to the first header line, skipping blank lines.
func (s *Scanner) nextHeader() bool {
	for s.b.Scan() {
		line := s.b.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if line[0] != '>' {
			s.err = ErrInvalid
			return false
		}
		return true
	}
	if err := s.b.Err(); err != nil {
		s.err = errors.Wrap(err, "couldn't read FASTA data")
	}
	s.done = true
	return false
}

func headerName(line []byte) []byte {
	name := line[1:]
	if i := bytes.IndexAny(name, " \t\r"); i >= 0 {
		name = name[:i]
	}
	return name
}

// Name returns the current record's name. The slice is reused by the next
// call to Scan.
func (s *Scanner) Name() []byte { return s.name }

// Seq returns the current record's sequence with line breaks removed. The
// slice is reused by the next call to Scan.
func (s *Scanner) Seq() []byte { return s.seq }

// NumRead returns the number of records scanned so far.
func (s *Scanner) NumRead() int64 { return s.nRead }

// Err returns the scanning error, if any.
func (s *Scanner) Err() error { return s.err }
