package fastq

import (
	"bufio"
	"io"
)

// Writer writes reads in four-line FASTQ format. Output is buffered;
// callers must call Flush when done.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter constructs a new FASTQ writer that writes reads to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write writes the read r. An empty Unk line is written as "+".
func (w *Writer) Write(r *Read) error {
	w.writeln(r.ID)
	w.writeln(r.Seq)
	if len(r.Unk) == 0 {
		w.writeln(plus)
	} else {
		w.writeln(r.Unk)
	}
	w.writeln(r.Qual)
	return w.err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	return w.w.Flush()
}

var plus = []byte{'+'}

func (w *Writer) writeln(line []byte) {
	if w.err != nil {
		return
	}
	if _, w.err = w.w.Write(line); w.err == nil {
		w.err = w.w.WriteByte('\n')
	}
}
