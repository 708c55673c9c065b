package httperr

import (
	"errors"
	"net/http"
	"slot_engine/internal/model"
	"slot_engine/pkg/resp"
	"time"

	log "github.com/sirupsen/logrus"
)

type errorResponse struct {
	Error          string     `json:"error"`
	Message        string     `json:"message"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}

// Write - переводит ошибку сервиса в HTTP статус и JSON ответ
func Write(w http.ResponseWriter, err error) {
	status, code := classify(err)
	body := errorResponse{Error: code, Message: err.Error()}

	var claimed *model.AlreadyClaimedError
	if errors.As(err, &claimed) {
		next := claimed.NextEligibleAt.UTC()
		body.NextEligibleAt = &next
	}

	if status == http.StatusInternalServerError {
		log.WithError(err).Error("internal error")
		body.Message = "internal error"
	}

	resp.WriteJSONResponse(w, status, body)
}

// BadRequest - некорректное тело или параметры запроса
func BadRequest(w http.ResponseWriter, err error) {
	resp.WriteJSONResponse(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrInsufficientCredits):
		return http.StatusPaymentRequired, "insufficient_credits"
	case errors.Is(err, model.ErrInvalidBet):
		return http.StatusBadRequest, "invalid_bet"
	case errors.Is(err, model.ErrUnknownMachine):
		return http.StatusNotFound, "unknown_machine"
	case errors.Is(err, model.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found"
	case errors.Is(err, model.ErrAlreadyClaimed):
		return http.StatusConflict, "already_claimed"
	case errors.Is(err, model.ErrConcurrencyConflict):
		return http.StatusServiceUnavailable, "concurrency_conflict"
	}
	return http.StatusInternalServerError, "internal"
}
