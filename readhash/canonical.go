package readhash

import (
	"github.com/grailbio/base/log"
)

var (
	mateSuffix1 = []byte("/1")
	mateSuffix2 = []byte("/2")
	noQual      = []byte("*")
)

// Key is the canonical byte string of a read. A Key is never modified after
// it is built.
type Key []byte

// Canonicalizer turns records into Keys according to Opts. It remembers
// whether the single-end warning was issued for the current file, so one
// Canonicalizer must not be shared across goroutines.
type Canonicalizer struct {
	opts   Opts
	path   string
	warned bool
	warnf  func(format string, args ...interface{})
}

// NewCanonicalizer creates a Canonicalizer. Only the IncludeNames,
// IncludeQuality and Paired fields of opts are consulted.
func NewCanonicalizer(opts Opts) *Canonicalizer {
	return &Canonicalizer{opts: opts, warnf: log.Error.Printf}
}

// Reset prepares the Canonicalizer for a new input file. The single-end
// warning is issued at most once between calls to Reset.
func (c *Canonicalizer) Reset(path string) {
	c.path = path
	c.warned = false
}

// Canonicalize builds the Key of r. It returns false if r is a secondary or
// supplementary alignment, which must not be counted. r is not modified.
func (c *Canonicalizer) Canonicalize(r *Record) (Key, bool) {
	if r.Excluded() {
		return nil, false
	}
	seq, qual := r.Seq, r.Qual
	if r.Reverse {
		seq, qual = reverseRead(seq, qual)
	}

	n := len(seq)
	if c.opts.IncludeNames {
		n += len(r.Name) + len(mateSuffix1)
	}
	if c.opts.IncludeQuality {
		n += len(qual)
	}
	key := make(Key, 0, n)
	if c.opts.IncludeNames {
		key = append(key, r.Name...)
		key = append(key, c.mateSuffix(r)...)
	}
	key = append(key, seq...)
	if c.opts.IncludeQuality {
		if len(seq) == 1 && len(qual) == 1 && qual[0] == ' ' {
			qual = noQual
		}
		key = append(key, qual...)
	}
	return key, true
}

func (c *Canonicalizer) mateSuffix(r *Record) []byte {
	if !r.Last {
		return mateSuffix1
	}
	if c.opts.Paired {
		return mateSuffix2
	}
	if !c.warned {
		c.warned = true
		c.warnf("%s: found reads marked as the last segment of a pair, but hashing is in single-end mode; they are hashed as /1", c.path)
	}
	return mateSuffix1
}
