package account

import (
	"net/http"
	"slot_engine/internal/api/httperr"
	"slot_engine/internal/converter"
	"slot_engine/internal/middleware"
	"slot_engine/internal/service"
	"slot_engine/pkg/resp"
)

type HandlerDeps struct {
	Serv service.LedgerService
}

type Handler struct {
	serv service.LedgerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Open создаёт аккаунт игрока при первом входе. Повторный вызов отдаёт существующий
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	acc, err := h.serv.Open(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// Me возвращает текущее состояние аккаунта
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	acc, err := h.serv.Get(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*acc))
}

// ClaimDailyBonus начисляет ежедневный бонус
func (h *Handler) ClaimDailyBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	bonus, err := h.serv.ClaimDailyBonus(r.Context(), userID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDailyBonusResponse(*bonus))
}
