package readhash

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/golang/snappy"
	"github.com/grailbio/base/errorreporter"
	"github.com/grailbio/base/file"
	"github.com/pkg/errors"
)

// snappySuffix marks state files that are snappy-framed.
const snappySuffix = ".sz"

// LaneState is the saved Bucket of one lane. Sum is hex encoded.
type LaneState struct {
	ID    string `json:"id"`
	Sum   string `json:"sum"`
	Count uint64 `json:"count"`
}

// State is a saved Aggregator, so that digests of parts of a dataset can be
// computed separately and merged later.
type State struct {
	Digest      string      `json:"digest"`
	Partitioned bool        `json:"partitioned"`
	Lanes       []LaneState `json:"lanes"`
}

// NewState snapshots agg, which was computed with opts.
func NewState(agg *Aggregator, opts Opts) State {
	s := State{Digest: opts.Digest.Name, Partitioned: opts.Partition}
	if s.Digest == "" {
		s.Digest = MD5.Name
	}
	for i, id := range agg.Lanes().IDs() {
		b := agg.Bucket(i)
		s.Lanes = append(s.Lanes, LaneState{ID: id, Sum: strconv.FormatUint(b.Sum, 16), Count: b.Count})
	}
	return s
}

// Aggregator rebuilds the Aggregator that s was taken from.
func (s State) Aggregator() (*Aggregator, error) {
	agg := &Aggregator{lanes: NewLaneTable()}
	for _, l := range s.Lanes {
		sum, err := strconv.ParseUint(l.Sum, 16, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "lane %s: bad sum", l.ID)
		}
		agg.mergeLane(l.ID, Bucket{Sum: sum, Count: l.Count})
	}
	if agg.lanes.Len() == 0 {
		agg = NewAggregator(nil)
	}
	return agg, nil
}

// MergeStates merges snapshots. All of them must use the same digest function
// and partitioning.
func MergeStates(states []State) (State, *Aggregator, error) {
	if len(states) == 0 {
		return State{}, nil, errors.New("no states to merge")
	}
	total := &Aggregator{lanes: NewLaneTable()}
	for i, s := range states {
		if s.Digest != states[0].Digest {
			return State{}, nil, errors.Errorf("state %d uses digest %s, state 0 uses %s", i, s.Digest, states[0].Digest)
		}
		if s.Partitioned != states[0].Partitioned {
			return State{}, nil, errors.Errorf("state %d and state 0 differ in lane partitioning", i)
		}
		agg, err := s.Aggregator()
		if err != nil {
			return State{}, nil, errors.Wrapf(err, "state %d", i)
		}
		total.Merge(agg)
	}
	merged := NewState(total, Opts{Digest: DigestFunc{Name: states[0].Digest}, Partition: states[0].Partitioned})
	return merged, total, nil
}

// WriteState saves s to path. Paths ending in ".sz" are snappy compressed.
func WriteState(ctx context.Context, path string, s State) (err error) {
	out, err := file.Create(ctx, path)
	if err != nil {
		return err
	}
	var e errorreporter.T
	defer func() {
		e.Set(out.Close(ctx))
		err = e.Err()
	}()
	var w io.Writer = out.Writer(ctx)
	var sw *snappy.Writer
	if strings.HasSuffix(path, snappySuffix) {
		sw = snappy.NewBufferedWriter(w)
		w = sw
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	e.Set(enc.Encode(s))
	if sw != nil {
		e.Set(sw.Close())
	}
	return nil
}

// ReadState loads a State saved by WriteState.
func ReadState(ctx context.Context, path string) (s State, err error) {
	in, err := file.Open(ctx, path)
	if err != nil {
		return s, err
	}
	defer in.Close(ctx) // nolint: errcheck
	var r io.Reader = in.Reader(ctx)
	if strings.HasSuffix(path, snappySuffix) {
		r = snappy.NewReader(r)
	}
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return s, errors.Wrapf(err, "%s: malformed state", path)
	}
	return s, nil
}
