// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/middleware"
	"github.com/danielhkuo/stock-count/models"
)

// SessionHandler owns the single active count session.
// mu guards session and startedAt; it is held across submission so two
// requests cannot record the same session twice.
type SessionHandler struct {
	provider count.SnapshotProvider
	gate     *count.Gate

	mu        sync.Mutex
	session   *count.Session
	startedAt time.Time
}

func NewSessionHandler(provider count.SnapshotProvider, gate *count.Gate) *SessionHandler {
	return &SessionHandler{provider: provider, gate: gate}
}

// StartSession handles POST /counts/session
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req models.StartSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil {
		middleware.ErrorResponse(w, http.StatusConflict, "A count is already in progress")
		return
	}

	session, err := count.Start(r.Context(), h.provider, req.Responsible)
	if err != nil {
		writeCountError(w, err)
		return
	}

	h.session = session
	h.startedAt = time.Now().UTC()

	slog.Info("count started", "responsible", req.Responsible, "products", session.Len())

	middleware.JSONResponse(w, http.StatusCreated, h.view())
}

// GetSession handles GET /counts/session
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No count in progress")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.view())
}

// SetQuantity handles PUT /counts/session/lines/{product_id}/quantity
func (h *SessionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req models.SetQuantityRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	q := count.Unset()
	if req.PhysicalQuantity != nil {
		var err error
		if q, err = count.ParseQuantity(req.PhysicalQuantity.String()); err != nil {
			writeCountError(w, err)
			return
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No count in progress")
		return
	}

	if err := h.session.SetPhysicalQuantity(id, q); err != nil {
		writeCountError(w, err)
		return
	}

	h.writeLine(w, id)
}

// SetObservation handles PUT /counts/session/lines/{product_id}/observation
func (h *SessionHandler) SetObservation(w http.ResponseWriter, r *http.Request) {
	id, ok := productID(w, r)
	if !ok {
		return
	}

	var req models.SetObservationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No count in progress")
		return
	}

	if err := h.session.SetObservation(id, req.Observation); err != nil {
		writeCountError(w, err)
		return
	}

	h.writeLine(w, id)
}

// SubmitSession handles POST /counts/session/submit
// 201 with the record id, 409 with discrepancies awaiting confirmation,
// 422 listing uncounted products, 503 if the record could not be stored.
func (h *SessionHandler) SubmitSession(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitCountRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No count in progress")
		return
	}

	result, err := h.gate.Submit(r.Context(), h.session, count.SubmitOptions{
		Confirmed: req.Confirm,
		Note:      req.Note,
	})
	if err != nil {
		var incomplete *count.IncompleteCountError
		if errors.As(err, &incomplete) {
			countSubmissions.WithLabelValues(outcomeIncomplete).Inc()
			slog.Warn("count incomplete", "missing", len(incomplete.Missing))
		} else {
			countSubmissions.WithLabelValues(outcomeFailed).Inc()
		}
		writeCountError(w, err)
		return
	}

	if result.Status == count.StatusAwaitingConfirmation {
		countSubmissions.WithLabelValues(outcomeAwaiting).Inc()
		slog.Warn("count awaiting confirmation", "discrepancies", len(result.Discrepancies))
		middleware.JSONResponse(w, http.StatusConflict, models.SubmitCountResponse{
			Outcome:       models.OutcomeAwaitingConfirmation,
			Message:       "The count has differences; resubmit with confirm to record it",
			Discrepancies: toCountLines(result.Discrepancies),
		})
		return
	}

	countSubmissions.WithLabelValues(outcomeSubmitted).Inc()
	countDiscrepancies.Observe(float64(len(result.Discrepancies)))

	slog.Info("count recorded",
		"id", result.RecordID,
		"responsible", h.session.Operator(),
		"discrepancies", len(result.Discrepancies),
	)

	h.session = nil
	h.startedAt = time.Time{}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitCountResponse{
		Outcome:       models.OutcomeSubmitted,
		ID:            result.RecordID,
		Message:       "Count recorded",
		Discrepancies: toCountLines(result.Discrepancies),
	})
}

// DiscardSession handles DELETE /counts/session
func (h *SessionHandler) DiscardSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "No count in progress")
		return
	}

	slog.Info("count discarded", "responsible", h.session.Operator())

	h.session = nil
	h.startedAt = time.Time{}
	w.WriteHeader(http.StatusNoContent)
}

// view must be called with mu held.
func (h *SessionHandler) view() models.SessionView {
	return models.SessionView{
		Responsible: h.session.Operator(),
		StartedAt:   h.startedAt,
		Lines:       toCountLines(h.session.Evaluate()),
		Summary:     toSessionSummary(h.session.Summarize()),
	}
}

// writeLine must be called with mu held.
func (h *SessionHandler) writeLine(w http.ResponseWriter, id count.ProductID) {
	ref, line, err := h.session.Line(id)
	if err != nil {
		writeCountError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, toCountLine(count.LineEvaluation{
		Product:  ref,
		Line:     line,
		Variance: count.Evaluate(ref, line),
	}))
}

func productID(w http.ResponseWriter, r *http.Request) (count.ProductID, bool) {
	raw := r.PathValue("product_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "product_id must be an integer")
		return 0, false
	}
	return count.ProductID(id), true
}
