package readhash

// Record is one read as delivered by a format adapter. Adapters own the
// buffers; a Record is valid only until the next Source.Scan call.
type Record struct {
	// Name is the read name, without any "@"/">" prefix, comment, or "/1" "/2"
	// mate suffix.
	Name []byte
	// Seq is the read sequence as stored in the file, ASCII IUPAC.
	Seq []byte
	// Qual is the Phred+33 quality string. It is empty when the format carries
	// no qualities (FASTA).
	Qual []byte

	// Reverse is set when the stored sequence is the reverse complement of
	// what the sequencer produced (BAM flag 0x10).
	Reverse bool
	// First and Last are the first/last segment flags of a template (BAM
	// flags 0x40, 0x80, or R1/R2 of a FASTQ pair).
	First, Last bool
	// Secondary and Supplementary mark redundant alignment records.
	Secondary, Supplementary bool

	// ReadGroup is the value of the RG tag. HasReadGroup is false when the
	// record carries no RG tag.
	ReadGroup    string
	HasReadGroup bool
}

// Excluded reports whether the record is a redundant alignment that must not
// contribute to the digest.
func (r *Record) Excluded() bool {
	return r.Secondary || r.Supplementary
}

// Source yields the records of one input file, in file order. Sources are
// not thread safe.
type Source interface {
	// HeaderLines returns the header text of the file, one line per element,
	// without trailing newlines. Formats without a header return nil.
	HeaderLines() []string

	// Scan advances to the next record. It returns false at the end of the
	// input or on error; the caller must then check Err.
	Scan() bool

	// Record returns the current record. It must be called only after Scan
	// returns true.
	Record() *Record

	// Err returns the error that stopped Scan, or nil at a clean end of input.
	Err() error

	// Close releases the underlying file. It must be called exactly once.
	Close() error
}
