package readsource

import (
	"context"

	"github.com/grailbio/readhash/encoding/fasta"
	"github.com/grailbio/readhash/readhash"
)

type fastaSource struct {
	in  *input
	sc  *fasta.Scanner
	rec readhash.Record
	err error
}

// NewFASTA opens a FASTA file, optionally gzipped. Records have no quality
// and are marked as first segments.
func NewFASTA(ctx context.Context, path string) (readhash.Source, error) {
	in, err := openInput(ctx, path, true)
	if err != nil {
		return nil, err
	}
	return &fastaSource{in: in, sc: fasta.NewScanner(in.r)}, nil
}

func (s *fastaSource) HeaderLines() []string { return nil }

func (s *fastaSource) Scan() bool {
	if s.err != nil {
		return false
	}
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			s.err = &readhash.AdapterError{Path: s.in.path, Record: s.sc.NumRead() + 1, Err: err}
		}
		return false
	}
	s.rec = readhash.Record{Name: s.sc.Name(), Seq: s.sc.Seq(), First: true}
	return true
}

func (s *fastaSource) Record() *readhash.Record { return &s.rec }
func (s *fastaSource) Err() error               { return s.err }
func (s *fastaSource) Close() error             { return s.in.close() }
