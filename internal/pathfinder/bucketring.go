package pathfinder

// BucketRing is the bounded-weight frontier strategy: a ring of
// maxCost+1 buckets indexed by absolute cost modulo the ring size, with a
// cursor tracking the cost extraction has reached. Because every offered
// cost lies in [cursor, cursor+maxCost] during a shortest-path run, the
// scan from the cursor finds the cheapest bucket in amortized constant
// time and buckets never hold two different absolute costs at once.
//
// Offering a cost outside that window is a caller error with undefined
// results; size the ring with the grid's maximum edge cost. Reset keeps
// bucket capacity, so a pooled ring serves many queries with no
// per-query allocation.
type BucketRing struct {
	buckets [][]uint32
	cursor  uint32
	queued  int
}

// NewBucketRing returns a ring sized for edge costs up to maxCost.
func NewBucketRing(maxCost uint32) *BucketRing {
	return &BucketRing{buckets: make([][]uint32, maxCost+1)}
}

func (r *BucketRing) Offer(cost, index uint32) {
	b := cost % uint32(len(r.buckets))
	r.buckets[b] = append(r.buckets[b], index)
	r.queued++
}

func (r *BucketRing) TakeMin() (uint32, bool) {
	if r.queued == 0 {
		return 0, false
	}
	n := uint32(len(r.buckets))
	for {
		b := r.cursor % n
		if last := len(r.buckets[b]) - 1; last >= 0 {
			index := r.buckets[b][last]
			r.buckets[b] = r.buckets[b][:last]
			r.queued--
			return index, true
		}
		r.cursor++
	}
}

func (r *BucketRing) Reset() {
	for i := range r.buckets {
		r.buckets[i] = r.buckets[i][:0]
	}
	r.cursor = 0
	r.queued = 0
}
