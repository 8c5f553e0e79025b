package roundhandlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	roundservice "github.com/Black-And-White-Club/golf-trip/app/modules/round/application"
	rounddomain "github.com/Black-And-White-Club/golf-trip/app/modules/round/domain"
	"github.com/Black-And-White-Club/golf-trip/internal/httpx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type cellRequest struct {
	Value string `json:"value" validate:"max=16"`
}

type cellResponse struct {
	Value rounddomain.Cell `json:"value"`
}

type parTemplateRequest struct {
	TotalPar int `json:"total_par" validate:"min=0,max=200"`
}

type importURLRequest struct {
	URL  string `json:"url" validate:"required,url,max=2048"`
	Name string `json:"name" validate:"max=80"`
}

type viewModeRequest struct {
	Mode roundservice.ViewMode `json:"mode" validate:"required"`
}

// HandleCreateRound adds an empty round sized to the request.
func (h *RoundHandlers) HandleCreateRound(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req roundservice.CreateRoundRequest
	if err := httpx.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	round, err := h.service.CreateRound(r.Context(), tripID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, round)
}

// HandleRemoveRound deletes a round.
func (h *RoundHandlers) HandleRemoveRound(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	if err := h.service.RemoveRound(r.Context(), tripID, roundIDParam(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetScore stores one score cell. Any value is accepted and sanitized.
func (h *RoundHandlers) HandleSetScore(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	hole, err := holeParam(r)
	if err != nil {
		badRequest(w, "invalid hole")
		return
	}
	var req cellRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	cell, err := h.service.SetScore(r.Context(), tripID, roundIDParam(r), pathParam(r, "player"), hole, req.Value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cellResponse{Value: cell})
}

// HandleSetPar stores one par cell.
func (h *RoundHandlers) HandleSetPar(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	hole, err := holeParam(r)
	if err != nil {
		badRequest(w, "invalid hole")
		return
	}
	var req cellRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	cell, err := h.service.SetPar(r.Context(), tripID, roundIDParam(r), hole, req.Value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cellResponse{Value: cell})
}

// HandleSetHandicap stores a player's handicap for the round.
func (h *RoundHandlers) HandleSetHandicap(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req cellRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	cell, err := h.service.SetHandicap(r.Context(), tripID, roundIDParam(r), pathParam(r, "player"), req.Value)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cellResponse{Value: cell})
}

// HandleApplyParTemplate overwrites the par row from a course total.
func (h *RoundHandlers) HandleApplyParTemplate(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req parTemplateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	round, err := h.service.ApplyParTemplate(r.Context(), tripID, roundIDParam(r), req.TotalPar)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, round)
}

// HandleSetViewMode switches a round between scores and leaderboard.
func (h *RoundHandlers) HandleSetViewMode(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req viewModeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}
	if err := h.service.SetViewMode(r.Context(), tripID, roundIDParam(r), req.Mode); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleOpenRound makes a round the active one.
func (h *RoundHandlers) HandleOpenRound(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	if err := h.service.OpenRound(r.Context(), tripID, roundIDParam(r)); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleImportScorecard accepts a multipart "file" upload and an optional
// "name" field.
func (h *RoundHandlers) HandleImportScorecard(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.WriteError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		badRequest(w, "invalid multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		badRequest(w, "missing file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		badRequest(w, "unreadable file")
		return
	}

	round, err := h.service.ImportScorecard(r.Context(), tripID, r.FormValue("name"), header.Filename, data)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Scorecard import rejected",
			slog.String("trip_id", tripID.String()),
			slog.String("file_name", header.Filename),
			slog.String("error", err.Error()),
		)
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, round)
}

// HandleImportScorecardURL imports a scorecard from a shared link.
func (h *RoundHandlers) HandleImportScorecardURL(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	var req importURLRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		badRequest(w, httpx.DescribeDecodeError(err))
		return
	}

	round, err := h.service.ImportScorecardURL(r.Context(), tripID, req.Name, req.URL)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, round)
}

// HandleExportScorecard downloads the round as a spreadsheet.
func (h *RoundHandlers) HandleExportScorecard(w http.ResponseWriter, r *http.Request) {
	tripID, err := TripIDParam(r)
	if err != nil {
		badRequest(w, "invalid trip id")
		return
	}
	roundID := roundIDParam(r)
	data, err := h.service.ExportScorecard(r.Context(), tripID, roundID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="round-`+roundID.String()+`.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
