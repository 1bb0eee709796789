package readhash

// Bucket is the running digest of one lane. Sum wraps modulo 2^64, so the
// result does not depend on the order in which values are added.
type Bucket struct {
	// Sum is the sum of the digest values of all reads in the bucket.
	Sum uint64
	// Count is the number of reads in the bucket.
	Count uint64
}

// Add folds one digest value into b.
func (b *Bucket) Add(v uint64) {
	b.Sum += v
	b.Count++
}

// Merge adds the contents of other to b.
func (b *Bucket) Merge(other Bucket) {
	b.Sum += other.Sum
	b.Count += other.Count
}

// DefaultLane is the ID of the single bucket used when reads are not
// partitioned by read group.
const DefaultLane = "0"

// Aggregator holds one Bucket per lane.
type Aggregator struct {
	lanes   *LaneTable
	buckets []Bucket
}

// NewAggregator creates an Aggregator with one bucket per lane in lanes. If
// lanes is nil or empty, the Aggregator has the single lane DefaultLane.
func NewAggregator(lanes *LaneTable) *Aggregator {
	if lanes == nil || lanes.Len() == 0 {
		lanes = NewLaneTable()
		lanes.Add(DefaultLane)
	}
	return &Aggregator{lanes: lanes, buckets: make([]Bucket, lanes.Len())}
}

// Lanes returns the lane table of a.
func (a *Aggregator) Lanes() *LaneTable { return a.lanes }

// Add folds v into the bucket of lane.
//
// REQUIRES: 0 <= lane < a.Lanes().Len()
func (a *Aggregator) Add(lane int, v uint64) {
	a.buckets[lane].Add(v)
}

// Bucket returns the bucket of lane.
func (a *Aggregator) Bucket(lane int) Bucket { return a.buckets[lane] }

// Total returns the merge of all buckets.
func (a *Aggregator) Total() Bucket {
	var t Bucket
	for _, b := range a.buckets {
		t.Merge(b)
	}
	return t
}

// Merge adds other into a. Buckets are matched by lane ID; lanes of other that
// a does not have are appended in other's order.
func (a *Aggregator) Merge(other *Aggregator) {
	for i, id := range other.lanes.IDs() {
		a.mergeLane(id, other.buckets[i])
	}
}

func (a *Aggregator) mergeLane(id string, b Bucket) {
	lane := a.lanes.Add(id)
	for len(a.buckets) <= lane {
		a.buckets = append(a.buckets, Bucket{})
	}
	a.buckets[lane].Merge(b)
}
