package readhash

import (
	"context"
	"io"
	"io/ioutil"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/traverse"
	"github.com/pkg/errors"
)

// Opts controls how reads are canonicalized and aggregated.
type Opts struct {
	// IncludeNames adds the read name and mate suffix to the key.
	IncludeNames bool
	// IncludeQuality adds the quality string to the key.
	IncludeQuality bool
	// Paired hashes last-segment reads with a "/2" suffix. Without it they get
	// "/1" and a warning is logged once per file.
	Paired bool
	// Partition keeps one bucket per read group declared in the header.
	Partition bool
	// Debug writes a trace line per read instead of aggregating.
	Debug bool
	// Digest is the hash function. The zero value means MD5.
	Digest DigestFunc
}

// DefaultOpts hashes names and qualities of paired reads into one bucket
// with MD5.
var DefaultOpts = Opts{
	IncludeNames:   true,
	IncludeQuality: true,
	Paired:         true,
	Digest:         MD5,
}

// OpenFunc opens one input file as a Source.
type OpenFunc func(ctx context.Context, path string) (Source, error)

// Hasher runs the hashing pipeline over Sources.
type Hasher struct {
	opts  Opts
	trace *TraceWriter
}

// NewHasher creates a Hasher. trace receives per-read lines in Debug mode
// and may be nil otherwise.
func NewHasher(opts Opts, trace io.Writer) *Hasher {
	if opts.Digest.sum == nil {
		opts.Digest = MD5
	}
	h := &Hasher{opts: opts}
	if opts.Debug {
		if trace == nil {
			trace = ioutil.Discard
		}
		h.trace = NewTraceWriter(trace)
	}
	return h
}

// Opts returns the options of h.
func (h *Hasher) Opts() Opts { return h.opts }

// HashSource reads src to the end and returns the aggregate of its reads. In
// Debug mode the returned Aggregator is empty. path is used only in
// diagnostics. On error no Aggregator is returned.
func (h *Hasher) HashSource(path string, src Source) (*Aggregator, error) {
	lanes := NewLaneTable()
	if h.opts.Partition {
		lanes = BuildLaneTable(src.HeaderLines())
		log.Debug.Printf("%s: %d read groups", path, lanes.Len())
	}
	agg := NewAggregator(lanes)
	canon := NewCanonicalizer(h.opts)
	canon.Reset(path)

	var n int64
	for src.Scan() {
		n++
		r := src.Record()
		key, ok := canon.Canonicalize(r)
		if !ok {
			continue
		}
		v := h.opts.Digest.Sum(key).Value()
		if h.trace != nil {
			if err := h.trace.Write(key, v); err != nil {
				return nil, errors.Wrap(err, "write trace")
			}
			continue
		}
		lane, err := lanes.Resolve(r)
		if err != nil {
			return nil, &AdapterError{Path: path, Record: n, Err: err}
		}
		agg.Add(lane, v)
	}
	if err := src.Err(); err != nil {
		if _, ok := err.(*AdapterError); ok {
			return nil, err
		}
		return nil, &AdapterError{Path: path, Record: n + 1, Err: err}
	}
	if h.trace != nil {
		if err := h.trace.Flush(); err != nil {
			return nil, errors.Wrap(err, "write trace")
		}
	}
	log.Debug.Printf("%s: read %d records, %d hashed", path, n, agg.Total().Count)
	return agg, nil
}

// HashFile opens path and hashes it.
func (h *Hasher) HashFile(ctx context.Context, path string, open OpenFunc) (agg *Aggregator, err error) {
	src, err := open(ctx, path)
	if err != nil {
		return nil, err
	}
	agg, err = h.HashSource(path, src)
	if e := src.Close(); e != nil && err == nil {
		err = &AdapterError{Path: path, Err: e}
	}
	if err != nil {
		return nil, err
	}
	return agg, nil
}

// HashFiles hashes each of paths and merges the results in the order of
// paths. With parallelism > 1 (ignored in Debug mode), up to that many files
// are hashed concurrently; the result is the same as a sequential run.
func (h *Hasher) HashFiles(ctx context.Context, paths []string, open OpenFunc, parallelism int) (*Aggregator, error) {
	if h.opts.Debug || parallelism < 1 {
		parallelism = 1
	}
	results := make([]*Aggregator, len(paths))
	if parallelism == 1 {
		for i, path := range paths {
			agg, err := h.HashFile(ctx, path, open)
			if err != nil {
				return nil, err
			}
			results[i] = agg
		}
	} else {
		// Workers claim files from a shared queue.
		pathCh := make(chan int, len(paths))
		for i := range paths {
			pathCh <- i
		}
		close(pathCh)
		if parallelism > len(paths) {
			parallelism = len(paths)
		}
		err := traverse.Each(parallelism, func(int) error {
			for i := range pathCh {
				agg, err := h.HashFile(ctx, paths[i], open)
				if err != nil {
					return err
				}
				results[i] = agg
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	total := &Aggregator{lanes: NewLaneTable()}
	for _, agg := range results {
		total.Merge(agg)
	}
	if total.lanes.Len() == 0 {
		total = NewAggregator(nil)
	}
	return total, nil
}
