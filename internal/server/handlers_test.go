package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lottolab/scratchoff-data/internal/config"
	"github.com/lottolab/scratchoff-data/internal/model"
	"github.com/lottolab/scratchoff-data/internal/session"
)

type fakeStore struct {
	connectErr error

	games    []model.RawRecord
	combined []model.RawRecord
	avoid    []model.RawRecord
	byGame   map[string][]model.RawRecord

	lastFilter model.Filter
}

func (f *fakeStore) VerifyConnectivity(ctx context.Context) error { return f.connectErr }
func (f *fakeStore) Close(ctx context.Context) error              { return nil }

func (f *fakeStore) FetchGames(ctx context.Context) []model.RawRecord      { return f.games }
func (f *fakeStore) FetchPrizeTiers(ctx context.Context) []model.RawRecord { return nil }
func (f *fakeStore) FetchCombined(ctx context.Context) []model.RawRecord   { return f.combined }
func (f *fakeStore) FetchCombinedFiltered(ctx context.Context, filter model.Filter) []model.RawRecord {
	f.lastFilter = filter
	return f.combined
}
func (f *fakeStore) FetchGamesToAvoid(ctx context.Context) []model.RawRecord { return f.avoid }
func (f *fakeStore) FetchPrizeTiersForGame(ctx context.Context, gameID string) []model.RawRecord {
	return f.byGame[gameID]
}

func testConfig() config.Config {
	return config.Config{
		Server:  config.ServerConfig{Port: 8080},
		Filters: config.FiltersConfig{MinTicketPrice: 1, MaxTicketPrice: 100},
	}
}

func newTestServer(t *testing.T, st *fakeStore) *Server {
	t.Helper()
	sess, err := session.Open(context.Background(), st, model.Filter{
		MinTicketPrice: 1,
		MaxTicketPrice: 100,
	}, nil)
	if err != nil && st.connectErr == nil {
		t.Fatalf("open session: %v", err)
	}
	return New(testConfig(), sess, nil)
}

func doGET(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestHealthHealthy(t *testing.T) {
	srv := newTestServer(t, &fakeStore{})

	rec := doGET(t, srv, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestHealthDegraded(t *testing.T) {
	srv := newTestServer(t, &fakeStore{connectErr: errors.New("connection refused")})

	rec := doGET(t, srv, "/health")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["status"] != "degraded" {
		t.Errorf("status field = %v, want degraded", body["status"])
	}
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t, &fakeStore{
		games: []model.RawRecord{
			{"game_id": "G1", "game_name": "A", "ticket_price": 5},
			{"game_id": "G2", "game_name": "B", "ticket_price": 10},
		},
	})

	rec := doGET(t, srv, "/api/summary")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["total_games"] != float64(2) {
		t.Errorf("total_games = %v, want 2", body["total_games"])
	}
}

func TestGamesAppliesQueryFilter(t *testing.T) {
	st := &fakeStore{}
	srv := newTestServer(t, st)

	rec := doGET(t, srv, "/api/games?min_price=5&max_price=20&ending=exclude&game_id=G7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	want := model.Filter{GameID: "G7", MinTicketPrice: 5, MaxTicketPrice: 20, Ending: model.EndingExclude}
	if st.lastFilter != want {
		t.Errorf("filter = %+v, want %+v", st.lastFilter, want)
	}
}

func TestGamesBadParams(t *testing.T) {
	srv := newTestServer(t, &fakeStore{})

	tests := []struct {
		name   string
		target string
	}{
		{"non-numeric min", "/api/games?min_price=cheap"},
		{"non-numeric max", "/api/games?max_price=lots"},
		{"inverted range", "/api/games?min_price=50&max_price=10"},
		{"unknown ending mode", "/api/games?ending=sometimes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGET(t, srv, tt.target)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if _, ok := decodeJSON(t, rec)["error"]; !ok {
				t.Error("error body should carry an error message")
			}
		})
	}
}

func TestGamesAggregatedRowsOmitExpectedValue(t *testing.T) {
	srv := newTestServer(t, &fakeStore{
		combined: []model.RawRecord{
			{"game_id": "G1", "game_name": "Cash Blast", "ticket_price": 5,
				"prize_level": 1, "total_count": 6000, "claimed_count": 4900},
			{"game_id": "G1", "game_name": "Cash Blast", "ticket_price": 5,
				"prize_level": 5, "total_count": 6000, "claimed_count": 4900},
		},
	})

	rec := doGET(t, srv, "/api/games")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decodeJSON(t, rec)
	if body["count"] != float64(1) {
		t.Fatalf("count = %v, want 1", body["count"])
	}
	game := body["games"].([]any)[0].(map[string]any)
	if _, present := game["expected_value"]; present {
		t.Error("aggregated rows should not carry an expected_value field")
	}
	if _, present := game["win_probability"]; !present {
		t.Error("aggregated rows should always carry win_probability")
	}
}

func TestGamePrizes(t *testing.T) {
	srv := newTestServer(t, &fakeStore{
		byGame: map[string][]model.RawRecord{
			"G1": {
				{"game_id": "G1", "prize_level": 1, "total_count": 100, "claimed_count": 10},
			},
		},
	})

	rec := doGET(t, srv, "/api/games/G1/prizes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["game_id"] != "G1" {
		t.Errorf("game_id = %v, want G1", body["game_id"])
	}
	if body["top_prize_status"] != string(model.TopPrizeGood) {
		t.Errorf("top_prize_status = %v, want %q", body["top_prize_status"], model.TopPrizeGood)
	}
	if len(body["tiers"].([]any)) != 1 {
		t.Errorf("tiers = %v, want 1 row", body["tiers"])
	}
}

func TestAvoid(t *testing.T) {
	srv := newTestServer(t, &fakeStore{
		avoid: []model.RawRecord{
			{"game_id": "G1", "game_name": "Nearly Gone", "prize_level": 1,
				"total_prizes": 100, "prizes_claimed": 95, "claim_rate": 0.95},
		},
	})

	rec := doGET(t, srv, "/api/avoid")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeJSON(t, rec)
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t, &fakeStore{
		combined: []model.RawRecord{
			{"game_id": "G1", "game_name": "Cash Blast", "ticket_price": 5,
				"prize_level": 1, "total_count": 100, "claimed_count": 40},
		},
	})

	rec := doGET(t, srv, "/api/export.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "scratchoff_data_") {
		t.Errorf("Content-Disposition = %q, want attachment filename", cd)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d csv lines, want header + 1 row", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Game Number,") {
		t.Errorf("header = %q", lines[0])
	}
}
