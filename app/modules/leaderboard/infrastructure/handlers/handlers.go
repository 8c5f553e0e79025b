package leaderboardhandlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	leaderboardservice "github.com/Black-And-White-Club/golf-trip/app/modules/leaderboard/application"
	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/internal/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// TripSource loads trips for ranking and reports when they change.
type TripSource interface {
	GetTrip(ctx context.Context, tripID rounddomain.TripID) (*rounddomain.Trip, error)
	Watch(ctx context.Context, tripID rounddomain.TripID) (<-chan struct{}, func())
}

// LeaderboardHandlers serves read-only standings.
type LeaderboardHandlers struct {
	trips   TripSource
	service leaderboardservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(trips TripSource, service leaderboardservice.Service, logger *slog.Logger, tracer trace.Tracer) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		trips:   trips,
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// Routes registers the leaderboard endpoints alongside the trip routes.
func (h *LeaderboardHandlers) Routes(r chi.Router) {
	r.Get("/{tripID}/rounds/{roundID}/leaderboard", h.HandleLeaderboard)
	r.Get("/{tripID}/rounds/{roundID}/snapshot", h.HandleSnapshot)
	r.Get("/{tripID}/rounds/{roundID}/chart.png", h.HandleChart)
	r.Get("/{tripID}/rounds/{roundID}/live", h.HandleLive)
	r.Get("/{tripID}/standings", h.HandleStandings)
}

type snapshotResponse struct {
	Snapshot string `json:"snapshot"`
}

// HandleLeaderboard returns the ranked view of a round.
func (h *LeaderboardHandlers) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.loadTrip(w, r)
	if !ok {
		return
	}
	view, err := h.service.Leaderboard(r.Context(), trip, roundIDParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	etag := `"` + view.Fingerprint + `"`
	w.Header().Set("ETag", etag)
	if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleStandings returns the trip-long head-to-head standings.
func (h *LeaderboardHandlers) HandleStandings(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.loadTrip(w, r)
	if !ok {
		return
	}
	view, err := h.service.Standings(r.Context(), trip)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, view)
}

// HandleSnapshot returns the one-line standings summary.
func (h *LeaderboardHandlers) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.loadTrip(w, r)
	if !ok {
		return
	}
	snap, err := h.service.Snapshot(r.Context(), trip, roundIDParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, snapshotResponse{Snapshot: snap})
}

// HandleChart renders the standings as a PNG bar chart.
func (h *LeaderboardHandlers) HandleChart(w http.ResponseWriter, r *http.Request) {
	trip, ok := h.loadTrip(w, r)
	if !ok {
		return
	}
	png, err := h.service.Chart(r.Context(), trip, roundIDParam(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *LeaderboardHandlers) loadTrip(w http.ResponseWriter, r *http.Request) (*rounddomain.Trip, bool) {
	tripID, err := rounddomain.ParseTripID(chi.URLParam(r, "tripID"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid trip id")
		return nil, false
	}
	trip, err := h.trips.GetTrip(r.Context(), tripID)
	if err != nil {
		h.fail(w, r, err)
		return nil, false
	}
	return trip, true
}

func roundIDParam(r *http.Request) rounddomain.RoundID {
	return rounddomain.RoundID(chi.URLParam(r, "roundID"))
}

func (h *LeaderboardHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, roundservice.ErrTripNotFound),
		errors.Is(err, leaderboardservice.ErrRoundNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "Leaderboard request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		httpx.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
