package readhash

import (
	"bufio"
	"io"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// WriteReport writes the sums of agg to w. Without partitioning, one line
// "<hex sum>\t<count>" is written for the merge of all buckets. With
// partitioning, one line "<lane>\t<hex sum>\t<count>" is written per lane, in
// lane table order.
func WriteReport(w io.Writer, agg *Aggregator, partitioned bool) error {
	out := tsv.NewWriter(w)
	writeBucket := func(b Bucket) error {
		out.WriteString(strconv.FormatUint(b.Sum, 16))
		out.WriteString(strconv.FormatUint(b.Count, 10))
		return out.EndLine()
	}
	if !partitioned {
		if err := writeBucket(agg.Total()); err != nil {
			return err
		}
		return out.Flush()
	}
	for i, id := range agg.Lanes().IDs() {
		out.WriteString(id)
		if err := writeBucket(agg.Bucket(i)); err != nil {
			return err
		}
	}
	return out.Flush()
}

// TraceWriter writes one debug line per hashed read: the canonical key, a
// space, and the hex digest value.
type TraceWriter struct {
	w *bufio.Writer
}

// NewTraceWriter creates a TraceWriter on w. Flush must be called when done.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: bufio.NewWriter(w)}
}

// Write emits the trace line of one read.
func (t *TraceWriter) Write(key Key, v uint64) error {
	var buf [16]byte
	t.w.Write(key)
	t.w.WriteByte(' ')
	t.w.Write(strconv.AppendUint(buf[:0], v, 16))
	return t.w.WriteByte('\n')
}

// Flush flushes buffered trace lines.
func (t *TraceWriter) Flush() error { return t.w.Flush() }
