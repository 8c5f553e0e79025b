package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/config"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{
		HTTP:    config.HTTPConfig{Address: ":0", RateLimit: 1000, RateBurst: 1000},
		Scoring: config.ScoringConfig{DefaultHoles: 18, DefaultPar: 72},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close(context.Background()) })
	return app
}

func call(t *testing.T, h http.Handler, method, path, body string, out any) int {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, rdr))
	if out != nil {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), rr.Body.String())
	}
	return rr.Code
}

func TestTripLifecycleOverHTTP(t *testing.T) {
	h := newTestApp(t).Handler()

	var trip rounddomain.Trip
	require.Equal(t, http.StatusCreated, call(t, h, http.MethodPost, "/api/trips/", `{"name":"Bandon","roster":["Alice","Bob"]}`, &trip))
	base := "/api/trips/" + trip.ID.String()

	var round rounddomain.Round
	require.Equal(t, http.StatusCreated, call(t, h, http.MethodPost, base+"/rounds", `{"name":"Day 1"}`, &round))
	require.Equal(t, 18, round.Holes)
	require.Equal(t, rounddomain.Cell("4"), round.Par[0])

	for hole := 1; hole <= 3; hole++ {
		path := base + "/rounds/" + round.ID.String() + "/scores/Alice/" + string(rune('0'+hole))
		require.Equal(t, http.StatusOK, call(t, h, http.MethodPut, path, `{"value":"4"}`, nil))
	}
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPut, base+"/rounds/"+round.ID.String()+"/scores/Bob/1", `{"value":"3"}`, nil))

	var view leaderboardservice.View
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, base+"/rounds/"+round.ID.String()+"/leaderboard", "", &view))
	require.Len(t, view.Rows, 2)
	require.Equal(t, "Bob", view.Rows[0].Player)
	require.Equal(t, "Alice", view.Rows[1].Player)

	require.Equal(t, http.StatusNotFound, call(t, h, http.MethodGet, "/api/trips/"+rounddomain.NewTripID().String(), "", nil))
}

func TestOperationalEndpoints(t *testing.T) {
	h := newTestApp(t).Handler()

	var health map[string]string
	require.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/healthz", "", &health))
	require.Equal(t, "ok", health["status"])

	call(t, h, http.MethodPost, "/api/trips/", `{"roster":["Solo"]}`, nil)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), `golf_trip_round_operations_total{operation="CreateTrip",status="success"} 1`)
	require.Contains(t, rr.Body.String(), "golf_trip_http_requests_total")
}
