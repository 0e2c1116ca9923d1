// Package apimonitor implements a small read-only HTTP surface over a
// season run in progress: health, a service-status summary,
// standings, and a playoff bracket by year. Routing, gzip compression,
// CORS, structured logging, and panic recovery are the ambient shape;
// persistence is the file-backed repositories in internal/standings,
// internal/leaguectx, and internal/playoffs rather than a database.
package apimonitor

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/rs/cors"

	"github.com/baseball-sim/core/internal/playoffs"
	"github.com/baseball-sim/core/internal/standings"
)

// requestMetrics tracks request/error counts and total latency across
// the monitor's lifetime, surfaced at /metrics.
type requestMetrics struct {
	requestCount      int64
	errorCount        int64
	totalResponseTime int64 // milliseconds
	startTime         time.Time
}

func (m *requestMetrics) recordRequest(status int, d time.Duration) {
	atomic.AddInt64(&m.requestCount, 1)
	atomic.AddInt64(&m.totalResponseTime, d.Milliseconds())
	if status >= http.StatusInternalServerError {
		atomic.AddInt64(&m.errorCount, 1)
	}
}

type metricsResponse struct {
	System      systemMetrics      `json:"system"`
	Application applicationMetrics `json:"application"`
	Uptime      string             `json:"uptime"`
}

type systemMetrics struct {
	GoVersion     string  `json:"go_version"`
	NumGoroutines int     `json:"num_goroutines"`
	NumCPU        int     `json:"num_cpu"`
	MemAllocMB    float64 `json:"mem_alloc_mb"`
	NumGC         uint32  `json:"num_gc"`
}

type applicationMetrics struct {
	TotalRequests   int64   `json:"total_requests"`
	TotalErrors     int64   `json:"total_errors"`
	ErrorRatePct    float64 `json:"error_rate_percent"`
	AvgResponseMS   float64 `json:"avg_response_time_ms"`
}

// StandingsSource is the read-only view onto a running season's
// standings repository.
type StandingsSource interface {
	All() map[string]*standings.Record
}

// BracketSource loads a persisted playoff bracket by year.
type BracketSource func(year int) (*playoffs.Bracket, error)

// Config carries the values NewServer needs to start listening
//.
type Config struct {
	Addr            string
	AllowedOrigins  []string
	Standings       StandingsSource
	LoadBracket     BracketSource
	SeasonYear      func() int
	Healthy         func() bool
}

// Server is the monitor's HTTP surface.
type Server struct {
	cfg        Config
	router     *mux.Router
	httpServer *http.Server
	metrics    *requestMetrics
}

// NewServer builds a Server with routes registered but not listening.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8090"
	}
	s := &Server{cfg: cfg, router: mux.NewRouter(), metrics: &requestMetrics{startTime: time.Now()}}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/").Subrouter()
	api.HandleFunc("/health", s.healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/status", s.statusHandler).Methods(http.MethodGet)
	api.HandleFunc("/standings", s.standingsHandler).Methods(http.MethodGet)
	api.HandleFunc("/playoffs/{year}", s.playoffsHandler).Methods(http.MethodGet)
	api.HandleFunc("/metrics", s.metricsHandler).Methods(http.MethodGet)

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
}

// Start blocks serving HTTP until the server is shut down.
func (s *Server) Start() error {
	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type", "Accept"},
	})

	handler := handlers.CompressHandler(c.Handler(s.router))

	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", s.cfg.Addr).Info("apimonitor: starting status surface")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// statusRecorder captures the response status for metrics, since
// http.ResponseWriter has no getter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		duration := time.Since(start)
		s.metrics.recordRequest(rec.status, duration)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": duration.String(),
		}).Info("apimonitor: request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.WithField("panic", err).Error("apimonitor: recovered panic")
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthy := true
	if s.cfg.Healthy != nil {
		healthy = s.cfg.Healthy()
	}
	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": state,
		"time":   time.Now().UTC(),
	})
}

func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	year := 0
	if s.cfg.SeasonYear != nil {
		year = s.cfg.SeasonYear()
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"service":     "baseball season simulator",
		"status":      "online",
		"season_year": year,
		"time":        time.Now().UTC(),
	})
}

func (s *Server) standingsHandler(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Standings == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "standings unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, s.cfg.Standings.All())
}

func (s *Server) metricsHandler(w http.ResponseWriter, r *http.Request) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	requests := atomic.LoadInt64(&s.metrics.requestCount)
	errors := atomic.LoadInt64(&s.metrics.errorCount)
	totalMS := atomic.LoadInt64(&s.metrics.totalResponseTime)

	var errorRate, avgResponse float64
	if requests > 0 {
		errorRate = (float64(errors) / float64(requests)) * 100
		avgResponse = float64(totalMS) / float64(requests)
	}

	writeJSON(w, http.StatusOK, metricsResponse{
		System: systemMetrics{
			GoVersion:     runtime.Version(),
			NumGoroutines: runtime.NumGoroutine(),
			NumCPU:        runtime.NumCPU(),
			MemAllocMB:    float64(mem.Alloc) / (1024 * 1024),
			NumGC:         mem.NumGC,
		},
		Application: applicationMetrics{
			TotalRequests: requests,
			TotalErrors:   errors,
			ErrorRatePct:  errorRate,
			AvgResponseMS: avgResponse,
		},
		Uptime: time.Since(s.metrics.startTime).String(),
	})
}

func (s *Server) playoffsHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid year"})
		return
	}
	if s.cfg.LoadBracket == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "playoffs unavailable"})
		return
	}
	bracket, err := s.cfg.LoadBracket(year)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no bracket for year"})
		return
	}
	writeJSON(w, http.StatusOK, bracket)
}
