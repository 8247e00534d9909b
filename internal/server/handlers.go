package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/lottolab/scratchoff-data/internal/export"
	"github.com/lottolab/scratchoff-data/internal/model"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response failed", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := struct {
		Status     string         `json:"status"`
		Components map[string]any `json:"components"`
	}{
		Status:     "healthy",
		Components: make(map[string]any),
	}

	if s.sess.Connected() {
		health.Components["neo4j"] = "connected"
	} else {
		health.Status = "degraded"
		health.Components["neo4j"] = "disconnected"
	}
	health.Components["tables"] = map[string]int{
		"games":          len(s.sess.Games()),
		"combined_rows":  len(s.sess.Combined()),
		"games_to_avoid": len(s.sess.GamesToAvoid()),
	}

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	s.writeJSON(w, status, health)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.sess.Summary())
}

// handleGames refreshes the session with the requested filter and returns
// the derived game table. An empty table is a valid response, never an
// error.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	filter, err := s.parseFilter(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.sess.Refresh(r.Context(), filter)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count": len(s.sess.Combined()),
		"games": s.sess.Combined(),
	})
}

func (s *Server) handleGamePrizes(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]

	breakdown, status := s.sess.Breakdown(r.Context(), gameID)
	s.writeJSON(w, http.StatusOK, map[string]any{
		"game_id":          gameID,
		"tiers":            breakdown,
		"top_prize_status": status,
	})
}

func (s *Server) handleAvoid(w http.ResponseWriter, r *http.Request) {
	avoid := s.sess.GamesToAvoid()
	s.writeJSON(w, http.StatusOK, map[string]any{
		"count": len(avoid),
		"games": avoid,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	filename := fmt.Sprintf("scratchoff_data_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := export.WriteCSV(w, s.sess.Combined()); err != nil {
		s.logger.Error("csv export failed", "error", err)
	}
}

// parseFilter builds a filter spec from query parameters, falling back to
// the configured defaults.
func (s *Server) parseFilter(r *http.Request) (model.Filter, error) {
	q := r.URL.Query()

	filter := model.Filter{
		GameID:         q.Get("game_id"),
		MinTicketPrice: s.cfg.Filters.MinTicketPrice,
		MaxTicketPrice: s.cfg.Filters.MaxTicketPrice,
		Ending:         model.EndingInclude,
	}

	if raw := q.Get("min_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid min_price %q", raw)
		}
		filter.MinTicketPrice = v
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.Filter{}, fmt.Errorf("invalid max_price %q", raw)
		}
		filter.MaxTicketPrice = v
	}
	if filter.MinTicketPrice > filter.MaxTicketPrice {
		return model.Filter{}, fmt.Errorf("min_price %v exceeds max_price %v",
			filter.MinTicketPrice, filter.MaxTicketPrice)
	}

	ending, err := model.ParseEndingFilter(q.Get("ending"))
	if err != nil {
		return model.Filter{}, err
	}
	filter.Ending = ending

	return filter, nil
}
