package pathfinder

// Cells per lazily allocated scratch chunk.
const chunkSize = 4096

type slot[T any] struct {
	gen uint32
	val T
}

// Scratch is a per-query store with one addressable slot per grid cell.
// Each slot carries the generation it was last written in; Reset advances
// the generation counter, which invalidates every slot in O(1) instead of
// clearing storage proportional to the grid. Chunks are allocated on first
// touch, so a query pays only for the cells it actually visits even when
// the grid has tens of millions of cells.
//
// Not safe for concurrent use: two overlapping queries sharing one
// generation counter would read each other's slots as fresh.
type Scratch[T any] struct {
	def    T
	gen    uint32
	chunks []*[chunkSize]slot[T]
}

// NewScratch returns an empty store handing out def on first touch within
// each generation.
func NewScratch[T any](def T) *Scratch[T] {
	return &Scratch[T]{def: def, gen: 1}
}

// Reset starts a new generation. All slots read as def afterwards; backing
// chunks are kept for reuse. On the rare generation counter wrap the slot
// tags are cleared in place so stale tags cannot alias the new generation.
func (s *Scratch[T]) Reset() {
	s.gen++
	if s.gen != 0 {
		return
	}
	for _, chunk := range s.chunks {
		if chunk == nil {
			continue
		}
		for i := range chunk {
			chunk[i].gen = 0
		}
	}
	s.gen = 1
}

// Get returns the slot for a cell index, defaulting it on first touch
// within the current generation. The pointer is valid until the next
// Reset. Index range is the caller's responsibility.
func (s *Scratch[T]) Get(index uint32) *T {
	ci := int(index / chunkSize)
	if ci >= len(s.chunks) {
		s.chunks = append(s.chunks, make([]*[chunkSize]slot[T], ci+1-len(s.chunks))...)
	}
	chunk := s.chunks[ci]
	if chunk == nil {
		chunk = new([chunkSize]slot[T])
		s.chunks[ci] = chunk
	}
	sl := &chunk[index%chunkSize]
	if sl.gen != s.gen {
		sl.gen = s.gen
		sl.val = s.def
	}
	return &sl.val
}
