// Package readsource adapts sequencing read files (BAM, SAM, FASTQ, FASTA)
// to readhash.Source.
package readsource

import (
	"bufio"
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/grailbio/base/errorreporter"
	"github.com/grailbio/base/file"
	"github.com/grailbio/readhash/readhash"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Format is an input file format.
type Format int

const (
	// Unknown means the format is guessed from the file name.
	Unknown Format = iota
	BAM
	SAM
	FASTQ
	FASTA
	// CRAM is recognized so that it can be rejected with a clear error.
	CRAM
)

var formatNames = []string{
	Unknown: "unknown",
	BAM:     "bam",
	SAM:     "sam",
	FASTQ:   "fastq",
	FASTA:   "fasta",
	CRAM:    "cram",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "invalid"
	}
	return formatNames[f]
}

// ParseFormat parses a format name as printed by Format.String. The empty
// string parses to Unknown.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return Unknown, nil
	}
	for i, name := range formatNames {
		if strings.EqualFold(s, name) {
			return Format(i), nil
		}
	}
	return Unknown, errors.Errorf("unknown format %q", s)
}

// GuessFormat determines the format of path from its extension. A trailing
// ".gz" is ignored. It returns Unknown if the extension is not recognized.
func GuessFormat(path string) Format {
	path = strings.ToLower(path)
	path = strings.TrimSuffix(path, ".gz")
	switch filepath.Ext(path) {
	case ".bam":
		return BAM
	case ".sam":
		return SAM
	case ".fq", ".fastq":
		return FASTQ
	case ".fa", ".fasta", ".fna":
		return FASTA
	case ".cram":
		return CRAM
	}
	return Unknown
}

// Open opens path as a Source of the given format. If format is Unknown it
// is guessed from the path.
func Open(ctx context.Context, path string, format Format) (readhash.Source, error) {
	if format == Unknown {
		format = GuessFormat(path)
	}
	switch format {
	case BAM:
		return NewBAM(ctx, path)
	case SAM:
		return NewSAM(ctx, path)
	case FASTQ:
		return NewFASTQ(ctx, path)
	case FASTA:
		return NewFASTA(ctx, path)
	case CRAM:
		return nil, &readhash.AdapterError{Path: path, Err: errors.New("CRAM input is not supported")}
	}
	return nil, &readhash.AdapterError{Path: path, Err: errors.New("cannot determine the file format; use one of .bam, .sam, .fq, .fastq, .fa, .fasta, .fna")}
}

// Opener returns a readhash.OpenFunc that opens files with the given
// format.
func Opener(format Format) readhash.OpenFunc {
	return func(ctx context.Context, path string) (readhash.Source, error) {
		return Open(ctx, path, format)
	}
}

// input is an open file, transparently gunzipped when requested and the
// content starts with the gzip magic.
type input struct {
	ctx  context.Context
	path string
	f    file.File
	gz   *gzip.Reader
	r    io.Reader
}

var gzipMagic = []byte{0x1f, 0x8b}

func openInput(ctx context.Context, path string, decompress bool) (*input, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, &readhash.AdapterError{Path: path, Err: err}
	}
	in := &input{ctx: ctx, path: path, f: f, r: f.Reader(ctx)}
	if !decompress {
		return in, nil
	}
	br := bufio.NewReaderSize(in.r, 1<<20)
	in.r = br
	magic, err := br.Peek(len(gzipMagic))
	if err != nil && err != io.EOF {
		in.close() // nolint: errcheck
		return nil, &readhash.AdapterError{Path: path, Err: err}
	}
	if len(magic) == len(gzipMagic) && magic[0] == gzipMagic[0] && magic[1] == gzipMagic[1] {
		if in.gz, err = gzip.NewReader(br); err != nil {
			in.close() // nolint: errcheck
			return nil, &readhash.AdapterError{Path: path, Err: errors.Wrap(err, "gzip")}
		}
		in.r = in.gz
	}
	return in, nil
}

func (in *input) close() error {
	err := errorreporter.T{}
	if in.gz != nil {
		err.Set(in.gz.Close())
	}
	err.Set(in.f.Close(in.ctx))
	return err.Err()
}
