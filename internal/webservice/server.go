// Package webservice serves route queries over HTTP/JSON: POST /path for
// shortest routes, GET /select for the state the grid's requirements
// read, POST /bench for on-demand timing runs, plus health and metrics
// endpoints. The serving path bounds concurrency with a semaphore and
// reuses pooled searchers so steady-state queries allocate almost
// nothing.
package webservice

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/semaphore"

	"github.com/qverkk/osrs-nav/internal/config"
	"github.com/qverkk/osrs-nav/internal/journal"
	"github.com/qverkk/osrs-nav/internal/model"
	"github.com/qverkk/osrs-nav/internal/pathfinder"
)

// Server answers route queries against one immutable grid.
type Server struct {
	cfg       config.Server
	grid      *model.NavGrid
	selection DataSelection
	searchers sync.Pool
	sem       *semaphore.Weighted
	cache     *RouteCache
	journal   *journal.Journal
}

// New builds a server around a loaded grid. cache and jrnl are optional;
// nil disables them.
func New(cfg config.Server, grid *model.NavGrid, cache *RouteCache, jrnl *journal.Journal) *Server {
	maxCost := grid.MaxEdgeCost()
	s := &Server{
		cfg:       cfg,
		grid:      grid,
		selection: BuildSelection(grid),
		sem:       semaphore.NewWeighted(int64(cfg.Search.MaxConcurrent)),
		cache:     cache,
		journal:   jrnl,
	}
	s.searchers.New = func() any {
		var frontier pathfinder.Frontier
		if cfg.Search.Frontier == "heap" {
			frontier = pathfinder.NewHeapFrontier()
		} else {
			frontier = pathfinder.NewBucketRing(maxCost)
		}
		searcher := pathfinder.NewSearcher(frontier)
		searcher.MaxVisited = uint32(cfg.Search.MaxVisited)
		return searcher
	}
	return s
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /path", s.handlePath)
	mux.HandleFunc("GET /select", s.handleSelect)
	if s.cfg.Bench.Enabled {
		mux.HandleFunc("POST /bench", s.handleBench)
	}
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.BindAddress, s.cfg.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("web service listening", "addr", srv.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down http server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// decodeJSON reads a bounded JSON body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
