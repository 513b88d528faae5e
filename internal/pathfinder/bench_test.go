package pathfinder

import (
	"testing"

	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/testutil"
)

func benchGrid(b *testing.B) *model.NavGrid {
	b.Helper()
	g := testutil.OpenGrid(256, 256)
	testutil.AddDiagonals(g)
	AssignGroups(g)
	return g
}

// --- FindPath benchmarks ---

// BenchmarkSearcher_FindPath_Heap measures corner-to-corner search with
// the comparison-based frontier.
func BenchmarkSearcher_FindPath_Heap(b *testing.B) {
	b.ReportAllocs()
	g := benchGrid(b)
	s := NewSearcher(NewHeapFrontier())
	start := model.Coordinate{X: 0, Y: 0}
	end := model.Coordinate{X: 255, Y: 255}

	b.ResetTimer()
	for range b.N {
		if _, found := s.FindPath(g, start, end, nil); !found {
			b.Fatal("no route on open grid")
		}
	}
}

// BenchmarkSearcher_FindPath_Bucket measures the same query on the
// bucket-ring frontier. Steady-state allocations should be limited to
// the returned route.
func BenchmarkSearcher_FindPath_Bucket(b *testing.B) {
	b.ReportAllocs()
	g := benchGrid(b)
	s := NewSearcher(NewBucketRing(g.MaxEdgeCost()))
	start := model.Coordinate{X: 0, Y: 0}
	end := model.Coordinate{X: 255, Y: 255}

	b.ResetTimer()
	for range b.N {
		if _, found := s.FindPath(g, start, end, nil); !found {
			b.Fatal("no route on open grid")
		}
	}
}

// BenchmarkSearcher_FindPath_ShortRoute measures a query touching only a
// handful of cells, the case the generation-tagged scratch exists for.
func BenchmarkSearcher_FindPath_ShortRoute(b *testing.B) {
	b.ReportAllocs()
	g := benchGrid(b)
	s := NewSearcher(NewBucketRing(g.MaxEdgeCost()))
	start := model.Coordinate{X: 100, Y: 100}
	end := model.Coordinate{X: 104, Y: 100}

	b.ResetTimer()
	for range b.N {
		if _, found := s.FindPath(g, start, end, nil); !found {
			b.Fatal("no route on open grid")
		}
	}
}

// BenchmarkSearcher_FindPath_Teleports adds a requirement-gated teleport
// list to exercise per-query seeding.
func BenchmarkSearcher_FindPath_Teleports(b *testing.B) {
	b.ReportAllocs()
	g := benchGrid(b)
	for i := range 32 {
		g.AddTeleport(model.Edge{
			Destination:  model.Coordinate{X: int32(i * 7), Y: int32(i * 5)},
			Cost:         30,
			Requirements: []model.Requirement{{Kind: model.RequirementSkill, Name: "Magic", Value: int32(i)}},
			Definition:   &model.EdgeDefinition{Kind: "teleport"},
		})
	}
	state := &model.GameState{Skills: map[string]int32{"Magic": 20}}
	s := NewSearcher(NewBucketRing(g.MaxEdgeCost()))
	start := model.Coordinate{X: 0, Y: 0}
	end := model.Coordinate{X: 255, Y: 255}

	b.ResetTimer()
	for range b.N {
		if _, found := s.FindPath(g, start, end, state); !found {
			b.Fatal("no route on open grid")
		}
	}
}

// --- Flood benchmarks ---

func BenchmarkFlooder_Flood(b *testing.B) {
	b.ReportAllocs()
	g := benchGrid(b)
	f := NewFlooder()
	start := model.Coordinate{X: 128, Y: 128}

	b.ResetTimer()
	for range b.N {
		count := 0
		f.Flood(g, start, func(uint32) bool {
			count++
			return true
		})
		if count != 256*256 {
			b.Fatalf("flood visited %d cells", count)
		}
	}
}

// --- Scratch benchmarks ---

// BenchmarkScratch_Reset confirms generation reset stays O(1) regardless
// of how many cells the previous query touched.
func BenchmarkScratch_Reset(b *testing.B) {
	b.ReportAllocs()
	s := NewScratch(uint32(0))
	for i := range uint32(100_000) {
		*s.Get(i) = i
	}

	b.ResetTimer()
	for range b.N {
		s.Reset()
	}
}

func BenchmarkScratch_Get(b *testing.B) {
	b.ReportAllocs()
	s := NewScratch(uint32(0))
	s.Reset()

	b.ResetTimer()
	for i := range b.N {
		*s.Get(uint32(i) % 100_000) = uint32(i)
	}
}
