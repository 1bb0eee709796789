package readhash

import (
	"bytes"
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestWriteReport(t *testing.T) {
	lanes := BuildLaneTable([]string{"@RG\tID:L2", "@RG\tID:L1"})
	agg := NewAggregator(lanes)
	agg.Add(0, 0xff)
	agg.Add(0, 0x01)
	agg.Add(1, 0xffffffffffffffff)

	var buf bytes.Buffer
	expect.NoError(t, WriteReport(&buf, agg, false))
	expect.EQ(t, buf.String(), "ff\t3\n")

	buf.Reset()
	expect.NoError(t, WriteReport(&buf, agg, true))
	expect.EQ(t, buf.String(), "L2\t100\t2\nL1\tffffffffffffffff\t1\n")

	buf.Reset()
	expect.NoError(t, WriteReport(&buf, NewAggregator(nil), false))
	expect.EQ(t, buf.String(), "0\t0\n")
}

func TestTraceWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTraceWriter(&buf)
	expect.NoError(t, w.Write(Key("r1/1ACGT!!!!"), 0xaf1e25d68449996e))
	expect.NoError(t, w.Write(Key("ACGT"), 0x1))
	expect.EQ(t, buf.Len(), 0)
	expect.NoError(t, w.Flush())
	expect.EQ(t, buf.String(), "r1/1ACGT!!!! af1e25d68449996e\nACGT 1\n")
}
