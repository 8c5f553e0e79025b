package roundhandlers

import (
	"net/http"

	"github.com/Black-And-White-Club/golf-trip/internal/httpx"
)

type createTripRequest struct {
	Name   string   `json:"name" validate:"max=80"`
	Roster []string `json:"roster" validate:"max=24,dive,max=64"`
}

type playerRequest struct {
	Name string `json:"name" validate:"required,max=64"`
}

// HandleCreateTrip creates a trip with an optional starting roster.
func (h *RoundHandlers) HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	trip, err := h.service.CreateTrip(r.Context(), req.Name, req.Roster)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, trip)
}

// HandleGetTrip returns the trip with its roster and rounds.
func (h *RoundHandlers) HandleGetTrip(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	trip, err := h.service.GetTrip(r.Context(), tripID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trip)
}

// HandleAddPlayer appends a player to the roster.
func (h *RoundHandlers) HandleAddPlayer(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req playerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	trip, err := h.service.AddPlayer(r.Context(), tripID, req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, trip)
}

// HandleRemovePlayer drops a player from the roster.
func (h *RoundHandlers) HandleRemovePlayer(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	trip, err := h.service.RemovePlayer(r.Context(), tripID, pathParam(r, "name"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trip)
}

// HandleRenamePlayer renames a roster entry.
func (h *RoundHandlers) HandleRenamePlayer(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req playerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	trip, err := h.service.RenamePlayer(r.Context(), tripID, pathParam(r, "name"), req.Name)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, trip)
}

// HandleSession returns the open round and per-round view modes.
func (h *RoundHandlers) HandleSession(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	sess, err := h.service.Session(r.Context(), tripID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sess)
}
