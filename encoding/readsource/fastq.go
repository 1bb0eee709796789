package readsource

import (
	"bytes"
	"context"

	"github.com/grailbio/base/errorreporter"
	"github.com/grailbio/readhash/encoding/fastq"
	"github.com/grailbio/readhash/readhash"
	"github.com/pkg/errors"
)

type fastqSource struct {
	in  *input
	sc  *fastq.Scanner
	r   fastq.Read
	rec readhash.Record
	err error
}

// NewFASTQ opens a single-end FASTQ file, optionally gzipped. Every read is
// marked as the first segment of its template.
func NewFASTQ(ctx context.Context, path string) (readhash.Source, error) {
	in, err := openInput(ctx, path, true)
	if err != nil {
		return nil, err
	}
	return &fastqSource{in: in, sc: fastq.NewScanner(in.r)}, nil
}

func (s *fastqSource) HeaderLines() []string { return nil }

func (s *fastqSource) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.sc.Scan(&s.r) {
		if err := s.sc.Err(); err != nil {
			s.err = &readhash.AdapterError{Path: s.in.path, Record: s.sc.NumRead() + 1, Err: err}
		}
		return false
	}
	s.rec = fastqRecord(&s.r, true)
	return true
}

func fastqRecord(r *fastq.Read, first bool) readhash.Record {
	return readhash.Record{Name: r.Name(), Seq: r.Seq, Qual: r.Qual, First: first, Last: !first}
}

func (s *fastqSource) Record() *readhash.Record { return &s.rec }
func (s *fastqSource) Err() error               { return s.err }
func (s *fastqSource) Close() error             { return s.in.close() }

// fastqPairSource yields the R1 then the R2 read of each pair.
type fastqPairSource struct {
	in1, in2 *input
	sc       *fastq.PairScanner
	r1, r2   fastq.Read
	second   bool // the R2 read of the current pair is next
	rec      readhash.Record
	err      error
}

// NewFASTQPair opens a pair of FASTQ files, optionally gzipped. Reads from
// r1Path are first segments and reads from r2Path last segments. Both files
// must list the same read names in the same order.
func NewFASTQPair(ctx context.Context, r1Path, r2Path string) (readhash.Source, error) {
	in1, err := openInput(ctx, r1Path, true)
	if err != nil {
		return nil, err
	}
	in2, err := openInput(ctx, r2Path, true)
	if err != nil {
		in1.close() // nolint: errcheck
		return nil, err
	}
	return &fastqPairSource{in1: in1, in2: in2, sc: fastq.NewPairScanner(in1.r, in2.r)}, nil
}

func (s *fastqPairSource) HeaderLines() []string { return nil }

func (s *fastqPairSource) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.second {
		s.second = false
		s.rec = fastqRecord(&s.r2, false)
		return true
	}
	if !s.sc.Scan(&s.r1, &s.r2) {
		if err := s.sc.Err(); err != nil {
			s.err = &readhash.AdapterError{Path: s.in1.path, Record: s.sc.NumRead() + 1, Err: errors.Wrapf(err, "pairing with %s", s.in2.path)}
		}
		return false
	}
	pair := s.sc.NumRead()
	if n1, n2 := s.r1.Name(), s.r2.Name(); !bytes.Equal(n1, n2) {
		s.err = &readhash.AdapterError{
			Path:   s.in1.path,
			Record: pair,
			Err:    errors.Wrapf(readhash.ErrPairOrderMismatch, "pair %d: %s in %s, %s in %s", pair, n1, s.in1.path, n2, s.in2.path),
		}
		return false
	}
	s.second = true
	s.rec = fastqRecord(&s.r1, true)
	return true
}

func (s *fastqPairSource) Record() *readhash.Record { return &s.rec }
func (s *fastqPairSource) Err() error               { return s.err }

func (s *fastqPairSource) Close() error {
	err := errorreporter.T{}
	err.Set(s.in1.close())
	err.Set(s.in2.close())
	return err.Err()
}
