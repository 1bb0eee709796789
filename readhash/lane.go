package readhash

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	readGroupPrefix = "@RG\t"
	readGroupIDTag  = "ID:"
)

// LaneTable maps read group IDs to bucket indices, in the order the read
// groups were first declared.
type LaneTable struct {
	ids   []string
	index map[string]int
}

// NewLaneTable creates an empty LaneTable.
func NewLaneTable() *LaneTable {
	return &LaneTable{index: map[string]int{}}
}

// BuildLaneTable scans SAM header lines for "@RG" declarations and assigns
// each read group ID an index in first-seen order. Lines that are not @RG
// lines, and @RG lines without a non-empty ID field, are ignored.
func BuildLaneTable(headerLines []string) *LaneTable {
	t := NewLaneTable()
	for _, line := range headerLines {
		if id, ok := parseReadGroupID(line); ok {
			t.Add(id)
		}
	}
	return t
}

func parseReadGroupID(line string) (string, bool) {
	if !strings.HasPrefix(line, readGroupPrefix) {
		return "", false
	}
	for _, field := range strings.Split(strings.TrimRight(line[len(readGroupPrefix):], "\r"), "\t") {
		if strings.HasPrefix(field, readGroupIDTag) && len(field) > len(readGroupIDTag) {
			return field[len(readGroupIDTag):], true
		}
	}
	return "", false
}

// Add registers id and returns its index. Adding an existing id returns its
// original index.
func (t *LaneTable) Add(id string) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	i := len(t.ids)
	t.ids = append(t.ids, id)
	t.index[id] = i
	return i
}

// Len returns the number of lanes.
func (t *LaneTable) Len() int { return len(t.ids) }

// IDs returns the lane IDs in index order. The caller must not modify the
// result.
func (t *LaneTable) IDs() []string { return t.ids }

// Index returns the index of id.
func (t *LaneTable) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Resolve returns the bucket index of r. An empty table puts every record in
// bucket 0.
func (t *LaneTable) Resolve(r *Record) (int, error) {
	if t.Len() == 0 {
		return 0, nil
	}
	if !r.HasReadGroup {
		return 0, errors.Wrapf(ErrMissingReadGroup, "read %s", r.Name)
	}
	i, ok := t.index[r.ReadGroup]
	if !ok {
		return 0, errors.Wrapf(ErrUnresolvedTag, "read %s: read group %q is not declared in the header", r.Name, r.ReadGroup)
	}
	return i, nil
}
