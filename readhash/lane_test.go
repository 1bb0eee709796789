package readhash

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testHeader = []string{
	"@HD\tVN:1.5\tSO:coordinate",
	"@SQ\tSN:chr1\tLN:1000",
	"@RG\tID:FLOWCELL.2\tSM:s1\tPL:ILLUMINA",
	"@RG\tSM:s1\tID:FLOWCELL.1",
	"@PG\tID:bwa\tPN:bwa",
	"@RG\tID:FLOWCELL.2\tSM:dup",
	"@RG\tSM:noid",
	"@RG\tID:",
	"@CO\t@RG\tID:comment",
}

func TestBuildLaneTable(t *testing.T) {
	lanes := BuildLaneTable(testHeader)
	assert.Equal(t, []string{"FLOWCELL.2", "FLOWCELL.1"}, lanes.IDs())
	assert.Equal(t, 2, lanes.Len())
	i, ok := lanes.Index("FLOWCELL.1")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	_, ok = lanes.Index("bwa")
	assert.False(t, ok)

	assert.Equal(t, 0, BuildLaneTable(nil).Len())
	assert.Equal(t, 0, BuildLaneTable([]string{"@HD\tVN:1.5"}).Len())
	assert.Equal(t, []string{"x"}, BuildLaneTable([]string{"@RG\tID:x\r"}).IDs())
}

func TestResolveLane(t *testing.T) {
	lanes := BuildLaneTable(testHeader)

	i, err := lanes.Resolve(&Record{Name: []byte("r"), ReadGroup: "FLOWCELL.1", HasReadGroup: true})
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	_, err = lanes.Resolve(&Record{Name: []byte("r")})
	assert.Equal(t, ErrMissingReadGroup, errors.Cause(err))

	_, err = lanes.Resolve(&Record{Name: []byte("r"), ReadGroup: "nope", HasReadGroup: true})
	assert.Equal(t, ErrUnresolvedTag, errors.Cause(err))
	assert.Contains(t, err.Error(), "nope")

	// Without declared read groups everything goes to bucket 0, tag or not.
	empty := NewLaneTable()
	i, err = empty.Resolve(&Record{Name: []byte("r")})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = empty.Resolve(&Record{Name: []byte("r"), ReadGroup: "x", HasReadGroup: true})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
}
