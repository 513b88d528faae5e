package webservice

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/qverkk/osrs-nav/internal/pathfinder"
)

// BenchRequest runs one route query repeatedly to time it.
type BenchRequest struct {
	PathRequest
	Iterations int `json:"iterations"`
}

// BenchResponse reports wall time over all iterations of one query.
type BenchResponse struct {
	Iterations int     `json:"iterations"`
	Found      bool    `json:"found"`
	Cost       uint32  `json:"cost"`
	Visited    uint32  `json:"visited"`
	TotalMs    float64 `json:"total_ms"`
	AvgUs      float64 `json:"avg_us"`
}

// handleBench times a query on a fresh bucket-ring searcher. Iterations
// are clamped to the configured ceiling and the run holds one semaphore
// slot for its whole duration, so a bench can never starve serving.
func (s *Server) handleBench(w http.ResponseWriter, r *http.Request) {
	var req BenchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if !s.grid.Contains(req.Start) || !s.grid.Contains(req.End) {
		http.Error(w, "Coordinate out of bounds", http.StatusBadRequest)
		return
	}

	iters := req.Iterations
	if iters < 1 {
		iters = 1
	}
	if limit := s.cfg.Bench.MaxIterations; limit > 0 && iters > limit {
		iters = limit
	}

	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
		return
	}
	defer s.sem.Release(1)

	searcher := pathfinder.NewSearcher(pathfinder.NewBucketRing(s.grid.MaxEdgeCost()))
	var found bool
	started := time.Now()
	for range iters {
		_, found = searcher.FindPath(s.grid, req.Start, req.End, &req.GameState)
	}
	total := time.Since(started)
	stats := searcher.LastStats()

	slog.Info("bench complete", "start", req.Start, "end", req.End,
		"iterations", iters, "total", total)
	writeJSON(w, http.StatusOK, BenchResponse{
		Iterations: iters,
		Found:      found,
		Cost:       stats.Cost,
		Visited:    stats.Visited,
		TotalMs:    float64(total.Nanoseconds()) / 1e6,
		AvgUs:      float64(total.Nanoseconds()) / 1e3 / float64(iters),
	})
}
