package roundhandlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/internal/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// maxUploadSize caps scorecard uploads.
const maxUploadSize = 10 << 20

// RoundHandlers serves the trip editing API.
type RoundHandlers struct {
	service roundservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(service roundservice.Service, logger *slog.Logger, tracer trace.Tracer) *RoundHandlers {
	return &RoundHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// Routes registers the trip endpoints on r, which is expected to be mounted
// at the trips prefix.
func (h *RoundHandlers) Routes(r chi.Router) {
	r.Post("/", h.HandleCreateTrip)
	r.Get("/{tripID}", h.HandleGetTrip)
	r.Get("/{tripID}/session", h.HandleSession)

	r.Post("/{tripID}/players", h.HandleAddPlayer)
	r.Delete("/{tripID}/players/{name}", h.HandleRemovePlayer)
	r.Patch("/{tripID}/players/{name}", h.HandleRenamePlayer)

	r.Post("/{tripID}/rounds", h.HandleCreateRound)
	r.Post("/{tripID}/rounds/import", h.HandleImportScorecard)
	r.Post("/{tripID}/rounds/import-url", h.HandleImportScorecardURL)
	r.Delete("/{tripID}/rounds/{roundID}", h.HandleRemoveRound)
	r.Put("/{tripID}/rounds/{roundID}/scores/{player}/{hole}", h.HandleSetScore)
	r.Put("/{tripID}/rounds/{roundID}/par/{hole}", h.HandleSetPar)
	r.Put("/{tripID}/rounds/{roundID}/hcp/{player}", h.HandleSetHandicap)
	r.Post("/{tripID}/rounds/{roundID}/par-template", h.HandleApplyParTemplate)
	r.Put("/{tripID}/rounds/{roundID}/view", h.HandleSetViewMode)
	r.Post("/{tripID}/rounds/{roundID}/open", h.HandleOpenRound)
	r.Get("/{tripID}/rounds/{roundID}/export.xlsx", h.HandleExportScorecard)
}

// TripIDParam parses the {tripID} path segment.
func TripIDParam(r *http.Request) (rounddomain.TripID, error) {
	return rounddomain.ParseTripID(chi.URLParam(r, "tripID"))
}

func roundIDParam(r *http.Request) rounddomain.RoundID {
	return rounddomain.RoundID(chi.URLParam(r, "roundID"))
}

// pathParam returns an unescaped path segment. Player names may contain
// spaces and other escaped characters.
func pathParam(r *http.Request, key string) string {
	raw := chi.URLParam(r, key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func holeParam(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "hole"))
}

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, roundservice.ErrTripNotFound),
		errors.Is(err, roundservice.ErrRoundNotFound),
		errors.Is(err, roundservice.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, roundservice.ErrDuplicatePlayer),
		errors.Is(err, roundservice.ErrRosterFull):
		return http.StatusConflict
	case errors.Is(err, roundservice.ErrURLImportDisabled):
		return http.StatusForbidden
	case errors.Is(err, roundservice.ErrScorecardTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, roundservice.ErrScorecardDownload):
		return http.StatusBadGateway
	case roundservice.IsClientError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Server errors are logged and masked.
func (h *RoundHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError || status == http.StatusBadGateway {
		h.logger.ErrorContext(r.Context(), "Request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		if status == http.StatusInternalServerError {
			msg = http.StatusText(status)
		}
	}
	httpx.WriteError(w, status, msg)
}

func badRequest(w http.ResponseWriter, msg string) {
	httpx.WriteError(w, http.StatusBadRequest, msg)
}
