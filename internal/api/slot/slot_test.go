package slot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slot_engine/internal/middleware"
	"slot_engine/internal/model"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type stubSlotService struct {
	spinErr   error
	gotReq    model.SpinRequest
	gotLimit  int
	statsErr  error
	machines  []model.MachineConfig
	spinCalls int
}

func (s *stubSlotService) Spin(_ context.Context, userID string, req model.SpinRequest) (*model.SpinResult, error) {
	s.spinCalls++
	s.gotReq = req
	if s.spinErr != nil {
		return nil, s.spinErr
	}
	return &model.SpinResult{
		ID:      uuid.New(),
		Machine: req.Machine,
		Bet:     req.Bet,
		Charged: req.Bet,
		Outcome: model.SpinOutcome{
			Symbols: []string{"A", "A", "A"},
			Tier:    model.TierBig,
			Payout:  req.Bet.Mul(decimal.NewFromInt(5)),
		},
		Balance:     decimal.NewFromInt(1040),
		Level:       1,
		GamesPlayed: 1,
		Multiplier:  1,
	}, nil
}

func (s *stubSlotService) Stats(_ context.Context, userID string, limit int) (*model.Stats, error) {
	s.gotLimit = limit
	if s.statsErr != nil {
		return nil, s.statsErr
	}
	return &model.Stats{UserID: userID}, nil
}

func (s *stubSlotService) Machines() []model.MachineConfig {
	return s.machines
}

func newRouter(serv *stubSlotService) http.Handler {
	h := NewHandler(HandlerDeps{Serv: serv})

	r := chi.NewRouter()
	r.Get("/machines", h.Machines)
	r.Group(func(rr chi.Router) {
		rr.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if id := r.Header.Get("X-Test-User"); id != "" {
					r = r.WithContext(middleware.WithUserID(r.Context(), id))
				}
				next.ServeHTTP(w, r)
			})
		})
		rr.Post("/machines/{machine}/spin", h.Spin)
		rr.Get("/stats", h.Stats)
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("X-Test-User", "player-1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestSpin_OK(t *testing.T) {
	serv := &stubSlotService{}
	w := do(t, newRouter(serv), http.MethodPost, "/machines/classic_3_reel/spin", `{"bet":"10"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body)
	}
	if serv.gotReq.Machine != "classic_3_reel" || !serv.gotReq.Bet.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected request %+v", serv.gotReq)
	}

	var body struct {
		Machine string   `json:"machine"`
		Tier    string   `json:"tier"`
		Payout  string   `json:"payout"`
		Balance string   `json:"balance"`
		Symbols []string `json:"symbols"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Tier != "big" || body.Payout != "50" || body.Balance != "1040" || len(body.Symbols) != 3 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestSpin_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{err: fmt.Errorf("%w: balance 5, bet 10", model.ErrInsufficientCredits), status: http.StatusPaymentRequired, code: "insufficient_credits"},
		{err: fmt.Errorf("%w: below minimum", model.ErrInvalidBet), status: http.StatusBadRequest, code: "invalid_bet"},
		{err: model.ErrUnknownMachine, status: http.StatusNotFound, code: "unknown_machine"},
		{err: model.ErrAccountNotFound, status: http.StatusNotFound, code: "account_not_found"},
		{err: model.ErrConcurrencyConflict, status: http.StatusServiceUnavailable, code: "concurrency_conflict"},
		{err: fmt.Errorf("pool exhausted"), status: http.StatusInternalServerError, code: "internal"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			w := do(t, newRouter(&stubSlotService{spinErr: tc.err}), http.MethodPost, "/machines/x/spin", `{"bet":1}`)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}

			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["error"] != tc.code {
				t.Fatalf("code = %q, want %q", body["error"], tc.code)
			}
			if tc.status == http.StatusInternalServerError && body["message"] != "internal error" {
				t.Fatalf("internal error leaked: %q", body["message"])
			}
		})
	}
}

func TestSpin_BadBody(t *testing.T) {
	for _, body := range []string{"", "{", `{"bet":"abc"}`, `{"bet":1,"extra":true}`} {
		serv := &stubSlotService{}
		w := do(t, newRouter(serv), http.MethodPost, "/machines/x/spin", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %q: status = %d", body, w.Code)
		}
		if serv.spinCalls != 0 {
			t.Fatalf("body %q reached the service", body)
		}
	}
}

func TestSpin_NoUser(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/machines/x/spin", strings.NewReader(`{"bet":1}`))
	w := httptest.NewRecorder()
	newRouter(&stubSlotService{}).ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestStats_HistoryParam(t *testing.T) {
	serv := &stubSlotService{}
	h := newRouter(serv)

	if w := do(t, h, http.MethodGet, "/stats?history=25", ""); w.Code != http.StatusOK || serv.gotLimit != 25 {
		t.Fatalf("status = %d, limit = %d", w.Code, serv.gotLimit)
	}
	if w := do(t, h, http.MethodGet, "/stats", ""); w.Code != http.StatusOK || serv.gotLimit != 0 {
		t.Fatalf("status = %d, limit = %d", w.Code, serv.gotLimit)
	}
	for _, bad := range []string{"-1", "ten"} {
		if w := do(t, h, http.MethodGet, "/stats?history="+bad, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("history=%s: status = %d", bad, w.Code)
		}
	}
}

func TestMachines(t *testing.T) {
	serv := &stubSlotService{machines: []model.MachineConfig{{
		Type:      "classic_3_reel",
		Name:      "Classic",
		ReelCount: 3,
		Symbols:   []model.WeightedSymbol{{Symbol: "A", Weight: 1}},
		MinBet:    decimal.NewFromInt(1),
		MaxBet:    decimal.NewFromInt(100),
		Paytable: []model.PayRule{{
			Name: "a_triple", Kind: model.PatternAll, Symbol: "A", Multiplier: 10, Tier: model.TierBig,
		}},
	}}}

	w := do(t, newRouter(serv), http.MethodGet, "/machines", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body []struct {
		Type     string   `json:"type"`
		Symbols  []string `json:"symbols"`
		MinBet   string   `json:"min_bet"`
		Paytable []struct {
			Name string `json:"name"`
		} `json:"paytable"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0].Type != "classic_3_reel" || body[0].MinBet != "1" || len(body[0].Paytable) != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}
