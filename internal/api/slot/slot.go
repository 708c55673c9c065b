package slot

import (
	"errors"
	"net/http"
	"slot_engine/internal/api/dto/slot"
	"slot_engine/internal/api/httperr"
	"slot_engine/internal/converter"
	"slot_engine/internal/middleware"
	"slot_engine/internal/service"
	"slot_engine/pkg/req"
	"slot_engine/pkg/resp"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - POST /machines/{machine}/spin
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	payload, err := req.Decode[slot.SpinRequest](r.Body)
	if err != nil {
		httperr.BadRequest(w, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), userID, converter.ToSpinRequest(chi.URLParam(r, "machine"), payload))
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Machines - GET /machines
func (h *Handler) Machines(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToMachinesResponse(h.serv.Machines()))
}

// Stats - GET /stats?history=N
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("history"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.BadRequest(w, errors.New("history must be a non-negative integer"))
			return
		}
		limit = n
	}

	stats, err := h.serv.Stats(r.Context(), userID, limit)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(*stats))
}
