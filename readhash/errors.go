package readhash

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingReadGroup is returned when lanes are in use and a record has no
	// RG tag.
	ErrMissingReadGroup = errors.New("read has no read group (RG) tag")
	// ErrUnresolvedTag is returned when a record's RG tag cannot be extracted,
	// or names a read group that the header does not declare.
	ErrUnresolvedTag = errors.New("failed to resolve read group (RG) tag")
	// ErrPairOrderMismatch is returned when the two files of a FASTQ pair
	// disagree on the read name at the same position.
	ErrPairOrderMismatch = errors.New("read names of paired files are not in the same order")
)

// AdapterError is a failure to read or parse an input file. Record is the
// 1-based ordinal of the record being read when the failure happened (0 if
// the failure happened while opening the file).
type AdapterError struct {
	Path   string
	Record int64
	Err    error
}

func (e *AdapterError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("%s: record %d: %v", e.Path, e.Record, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Cause implements the github.com/pkg/errors causer interface.
func (e *AdapterError) Cause() error { return e.Err }

// Unwrap supports errors.Is and errors.As.
func (e *AdapterError) Unwrap() error { return e.Err }
