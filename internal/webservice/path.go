package webservice

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/qverkk/osrs-nav/internal/journal"
	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/pathfinder"
)

// PathRequest is one route query. GameState gates extra edges and
// teleports; an empty state means no requirement is met.
type PathRequest struct {
	Start     model.Coordinate `json:"start"`
	End       model.Coordinate `json:"end"`
	GameState model.GameState  `json:"game_state"`
}

// PathResponse carries the computed route. Path is null when no route
// exists and empty when start and end are the same cell.
type PathResponse struct {
	Path    []pathfinder.Step `json:"path"`
	Cost    uint32            `json:"cost"`
	Visited uint32            `json:"visited"`
}

func (s *Server) handlePath(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pathRequests.WithLabelValues(outcomeRejected).Inc()
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if !s.grid.Contains(req.Start) || !s.grid.Contains(req.End) {
		pathRequests.WithLabelValues(outcomeRejected).Inc()
		http.Error(w, "Coordinate out of bounds", http.StatusBadRequest)
		return
	}

	started := time.Now()

	var cacheKey string
	if s.cache != nil {
		cacheKey = s.cache.Key(req)
		if route, ok := s.cache.Get(r.Context(), cacheKey); ok {
			cacheHits.Inc()
			pathRequests.WithLabelValues(outcomeCached).Inc()
			duration := time.Since(started)
			s.record(req, route.Found, route.Cost, len(route.Path), 0, duration, true)
			slog.Info("path served", "start", req.Start, "end", req.End,
				"duration", duration, "found", route.Found, "cached", true)
			writeJSON(w, http.StatusOK, PathResponse{Path: route.Path, Cost: route.Cost})
			return
		}
		cacheMisses.Inc()
	}

	if err := s.sem.Acquire(r.Context(), 1); err != nil {
		pathRequests.WithLabelValues(outcomeRejected).Inc()
		http.Error(w, "request canceled", http.StatusServiceUnavailable)
		return
	}
	searcher := s.searchers.Get().(*pathfinder.Searcher)
	steps, found := searcher.FindPath(s.grid, req.Start, req.End, &req.GameState)
	stats := searcher.LastStats()
	s.searchers.Put(searcher)
	s.sem.Release(1)

	duration := time.Since(started)
	resp := PathResponse{Visited: stats.Visited}
	if found {
		resp.Path = steps
		resp.Cost = stats.Cost
		pathRequests.WithLabelValues(outcomeFound).Inc()
	} else {
		pathRequests.WithLabelValues(outcomeAbsent).Inc()
	}
	pathDuration.Observe(duration.Seconds())
	pathVisited.Observe(float64(stats.Visited))

	if s.cache != nil {
		s.cache.Put(r.Context(), cacheKey, CachedRoute{
			Path:  resp.Path,
			Cost:  resp.Cost,
			Found: found,
		})
	}
	s.record(req, found, resp.Cost, len(steps), stats.Visited, duration, false)

	slog.Info("path served", "start", req.Start, "end", req.End,
		"duration", duration, "visited", stats.Visited, "found", found)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) record(req PathRequest, found bool, cost uint32, steps int, visited uint32, duration time.Duration, cacheHit bool) {
	if s.journal == nil {
		return
	}
	s.journal.Record(journal.Entry{
		Start:       req.Start,
		End:         req.End,
		Found:       found,
		Cost:        cost,
		Steps:       steps,
		Visited:     visited,
		Duration:    duration,
		CacheHit:    cacheHit,
		RequestedAt: time.Now(),
	})
}
