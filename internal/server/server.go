package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lottolab/scratchoff-data/internal/config"
	"github.com/lottolab/scratchoff-data/internal/session"
)

// Server exposes the dashboard data API over HTTP.
type Server struct {
	cfg    config.Config
	sess   *session.Session
	logger *slog.Logger
}

// New creates a Server over an open session.
func New(cfg config.Config, sess *session.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, sess: sess, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/summary", s.handleSummary).Methods(http.MethodGet)
	api.HandleFunc("/games", s.handleGames).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/prizes", s.handleGamePrizes).Methods(http.MethodGet)
	api.HandleFunc("/avoid", s.handleAvoid).Methods(http.MethodGet)
	api.HandleFunc("/export.csv", s.handleExport).Methods(http.MethodGet)

	return r
}

// HTTPServer wraps the router in an http.Server bound to the configured
// port.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
