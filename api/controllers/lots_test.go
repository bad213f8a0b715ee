package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/RostislavK636/B2B-marketplace/internal/lots"
)

type stubLotsService struct {
	lotResp   *lots.LotDTO
	lotErr    error
	listResp  []lots.LotDTO
	listErr   error
	quoteResp *lots.ShareQuoteDTO
	quoteErr  error

	lastQuoteLot   int64
	lastQuoteShare int
}

func (s *stubLotsService) GetLot(ctx context.Context, id int64) (*lots.LotDTO, error) {
	return s.lotResp, s.lotErr
}

func (s *stubLotsService) ListOpenLots(ctx context.Context) ([]lots.LotDTO, error) {
	return s.listResp, s.listErr
}

func (s *stubLotsService) QuoteShare(ctx context.Context, lotID int64, sharePercent int) (*lots.ShareQuoteDTO, error) {
	s.lastQuoteLot = lotID
	s.lastQuoteShare = sharePercent
	return s.quoteResp, s.quoteErr
}

func TestLotQuote(t *testing.T) {
	svc := &stubLotsService{
		quoteResp: &lots.ShareQuoteDTO{
			LotID:        7,
			SharePercent: 25,
			UnitCount:    250,
			PricePerUnit: decimal.RequireFromString("12.50"),
			Total:        decimal.RequireFromString("3125"),
		},
	}
	router := chi.NewRouter()
	router.Get("/lots/{lotId}/quote", LotQuote(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/lots/7/quote?share=25", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastQuoteLot != 7 || svc.lastQuoteShare != 25 {
		t.Fatalf("expected quote (7, 25) got (%d, %d)", svc.lastQuoteLot, svc.lastQuoteShare)
	}

	var envelope struct {
		Data lots.ShareQuoteDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.UnitCount != 250 {
		t.Fatalf("expected 250 units got %d", envelope.Data.UnitCount)
	}
}

func TestLotQuoteShareValidation(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"missing share", "/lots/7/quote"},
		{"non-numeric share", "/lots/7/quote?share=half"},
		{"zero share", "/lots/7/quote?share=0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &stubLotsService{}
			router := chi.NewRouter()
			router.Get("/lots/{lotId}/quote", LotQuote(svc, nil))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 got %d", rec.Code)
			}
		})
	}
}

func TestLotDetail(t *testing.T) {
	svc := &stubLotsService{
		lotResp: &lots.LotDTO{ID: 7, ProductName: "Pallet Wrap", RemainingQuantity: 600},
	}
	router := chi.NewRouter()
	router.Get("/lots/{lotId}", LotDetail(svc, nil))

	req := httptest.NewRequest(http.MethodGet, "/lots/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data lots.LotDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ProductName != "Pallet Wrap" {
		t.Fatalf("unexpected lot payload: %+v", envelope.Data)
	}
}
