package readsource

import (
	"bytes"
	"context"
	"io"

	"github.com/grailbio/base/errorreporter"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/hts/bam"
	"github.com/grailbio/hts/sam"
	"github.com/grailbio/readhash/readhash"
	"github.com/pkg/errors"
)

// noQual is the Phred+33 rendering of the 0xff "quality absent" byte.
const noQual = ' '

var rgTag = sam.NewTag("RG")

// recordReader is the subset of bam.Reader and sam.Reader used here.
type recordReader interface {
	Header() *sam.Header
	Read() (*sam.Record, error)
}

type samSource struct {
	in     *input
	reader recordReader
	closer io.Closer // bam.Reader; nil for SAM
	header []string

	prev *sam.Record
	rec  readhash.Record
	qual []byte
	n    int64
	err  error
}

// NewBAM opens a BAM file.
func NewBAM(ctx context.Context, path string) (readhash.Source, error) {
	in, err := openInput(ctx, path, false)
	if err != nil {
		return nil, err
	}
	br, err := bam.NewReader(in.r, 1)
	if err != nil {
		in.close() // nolint: errcheck
		return nil, &readhash.AdapterError{Path: path, Err: err}
	}
	return newSAMSource(in, br, br)
}

// NewSAM opens a SAM file, optionally gzipped.
func NewSAM(ctx context.Context, path string) (readhash.Source, error) {
	in, err := openInput(ctx, path, true)
	if err != nil {
		return nil, err
	}
	sr, err := sam.NewReader(in.r)
	if err != nil {
		in.close() // nolint: errcheck
		return nil, &readhash.AdapterError{Path: path, Err: err}
	}
	return newSAMSource(in, sr, nil)
}

func newSAMSource(in *input, r recordReader, closer io.Closer) (readhash.Source, error) {
	s := &samSource{in: in, reader: r, closer: closer}
	text, err := r.Header().MarshalText()
	if err != nil {
		s.Close() // nolint: errcheck
		return nil, &readhash.AdapterError{Path: in.path, Err: errors.Wrap(err, "header")}
	}
	for _, line := range bytes.Split(text, []byte{'\n'}) {
		if len(line) > 0 {
			s.header = append(s.header, string(line))
		}
	}
	return s, nil
}

func (s *samSource) HeaderLines() []string { return s.header }

func (s *samSource) Scan() bool {
	if s.err != nil {
		return false
	}
	if s.prev != nil {
		sam.PutInFreePool(s.prev)
		s.prev = nil
	}
	r, err := s.reader.Read()
	if err != nil {
		if err != io.EOF {
			s.err = &readhash.AdapterError{Path: s.in.path, Record: s.n + 1, Err: err}
		}
		return false
	}
	s.n++
	s.prev = r
	s.convert(r)
	return true
}

// convert fills s.rec from r. Name aliases r, which stays live until the
// next Scan.
func (s *samSource) convert(r *sam.Record) {
	seq := r.Seq.Expand()
	s.qual = s.qual[:0]
	if len(r.Qual) == 0 {
		for range seq {
			s.qual = append(s.qual, noQual)
		}
	} else {
		for _, q := range r.Qual {
			s.qual = append(s.qual, q+33)
		}
	}
	s.rec = readhash.Record{
		Name:          gunsafe.StringToBytes(r.Name),
		Seq:           seq,
		Qual:          s.qual,
		Reverse:       r.Flags&sam.Reverse != 0,
		First:         r.Flags&sam.Read1 != 0,
		Last:          r.Flags&sam.Read2 != 0,
		Secondary:     r.Flags&sam.Secondary != 0,
		Supplementary: r.Flags&sam.Supplementary != 0,
	}
	if aux := r.AuxFields.Get(rgTag); aux != nil {
		// A non-string RG leaves ReadGroup empty, which no header declares.
		s.rec.ReadGroup, _ = aux.Value().(string)
		s.rec.HasReadGroup = true
	}
}

func (s *samSource) Record() *readhash.Record { return &s.rec }

func (s *samSource) Err() error { return s.err }

func (s *samSource) Close() error {
	err := errorreporter.T{}
	if s.closer != nil {
		err.Set(s.closer.Close())
	}
	err.Set(s.in.close())
	return err.Err()
}
