package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slot_engine/internal/middleware"
	"slot_engine/internal/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

type stubLedger struct {
	acc      *model.Account
	getErr   error
	claimErr error
}

func (s *stubLedger) Open(_ context.Context, userID string) (*model.Account, error) {
	if s.acc == nil {
		acc := model.NewAccount(userID, decimal.NewFromInt(1000), time.Now())
		s.acc = &acc
	}
	return s.acc, nil
}

func (s *stubLedger) Get(_ context.Context, userID string) (*model.Account, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.acc, nil
}

func (s *stubLedger) ApplySpin(context.Context, string, model.SpinCharge) (*model.Settlement, error) {
	return nil, nil
}

func (s *stubLedger) ClaimDailyBonus(_ context.Context, userID string) (*model.DailyBonus, error) {
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	return &model.DailyBonus{
		Amount:         decimal.NewFromInt(125),
		Account:        *s.acc,
		NextEligibleAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}, nil
}

func serve(h http.HandlerFunc, userID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if userID != "" {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

func TestOpenAndMe(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubLedger{}})

	w := serve(h.Open, "player-1")
	if w.Code != http.StatusOK {
		t.Fatalf("open status = %d", w.Code)
	}

	var body struct {
		UserID     string `json:"user_id"`
		Balance    string `json:"balance"`
		Level      int    `json:"level"`
		Multiplier int64  `json:"multiplier"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.UserID != "player-1" || body.Balance != "1000" || body.Level != 1 || body.Multiplier != 1 {
		t.Fatalf("unexpected account %+v", body)
	}

	if w := serve(h.Me, "player-1"); w.Code != http.StatusOK {
		t.Fatalf("me status = %d", w.Code)
	}
	if w := serve(h.Me, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous me status = %d", w.Code)
	}
}

func TestMe_NotFound(t *testing.T) {
	h := NewHandler(HandlerDeps{Serv: &stubLedger{getErr: model.ErrAccountNotFound}})
	if w := serve(h.Me, "ghost"); w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestClaimDailyBonus(t *testing.T) {
	ledger := &stubLedger{}
	h := NewHandler(HandlerDeps{Serv: ledger})
	serve(h.Open, "player-1")

	w := serve(h.ClaimDailyBonus, "player-1")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var ok struct {
		Bonus          string    `json:"bonus"`
		NextEligibleAt time.Time `json:"next_eligible_at"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &ok); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if ok.Bonus != "125" || ok.NextEligibleAt.IsZero() {
		t.Fatalf("unexpected bonus %+v", ok)
	}

	next := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	ledger.claimErr = &model.AlreadyClaimedError{NextEligibleAt: next}

	w = serve(h.ClaimDailyBonus, "player-1")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	var rejected struct {
		Error          string    `json:"error"`
		NextEligibleAt time.Time `json:"next_eligible_at"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rejected); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rejected.Error != "already_claimed" || !rejected.NextEligibleAt.Equal(next) {
		t.Fatalf("unexpected rejection %+v", rejected)
	}
}
