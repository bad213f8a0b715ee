package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	authsvc "github.com/RostislavK636/B2B-marketplace/internal/auth"
	"github.com/RostislavK636/B2B-marketplace/internal/catalog"
	"github.com/RostislavK636/B2B-marketplace/internal/lots"
	product "github.com/RostislavK636/B2B-marketplace/internal/products"
	"github.com/RostislavK636/B2B-marketplace/internal/sellers"
	"github.com/RostislavK636/B2B-marketplace/pkg/config"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
	"github.com/RostislavK636/B2B-marketplace/pkg/metrics"
	"github.com/RostislavK636/B2B-marketplace/pkg/pagination"
)

type stubAuthService struct{}

func (stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*sellers.SellerDTO, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResult, error) {
	return nil, fmt.Errorf("not implemented")
}

func (stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return nil
}

func (stubAuthService) SessionStatus(ctx context.Context, sessionID string) (authsvc.SessionStatusDTO, error) {
	return authsvc.SessionStatusDTO{}, nil
}

type stubProductService struct{}

func (stubProductService) CreateProduct(ctx context.Context, sellerID int64, input product.CreateProductInput) (*product.ProductDTO, error) {
	panic("unimplemented")
}

func (stubProductService) ListProducts(ctx context.Context, sellerID int64) ([]product.ProductDTO, error) {
	panic("unimplemented")
}

func (stubProductService) DeleteProduct(ctx context.Context, sellerID, productID int64) error {
	panic("unimplemented")
}

func (stubProductService) ClearProducts(ctx context.Context, sellerID int64) (int64, error) {
	panic("unimplemented")
}

type stubSellersService struct{}

func (stubSellersService) GetSeller(ctx context.Context, id int64) (*sellers.SellerDTO, error) {
	company := "Crate & Wrap Co."
	return &sellers.SellerDTO{ID: id, Company: &company}, nil
}

func (stubSellersService) ListSellers(ctx context.Context, params pagination.Params) (*sellers.SellerPage, error) {
	return &sellers.SellerPage{}, nil
}

type stubCatalogService struct{}

func (stubCatalogService) Browse(ctx context.Context, input catalog.BrowseInput) ([]catalog.DisplayProduct, error) {
	return []catalog.DisplayProduct{}, nil
}

func (stubCatalogService) GetProduct(ctx context.Context, id int64) (*catalog.ProductDetail, error) {
	return nil, fmt.Errorf("not implemented")
}

type stubLotsService struct{}

func (stubLotsService) GetLot(ctx context.Context, id int64) (*lots.LotDTO, error) {
	panic("unimplemented")
}

func (stubLotsService) ListOpenLots(ctx context.Context) ([]lots.LotDTO, error) {
	return []lots.LotDTO{}, nil
}

func (stubLotsService) QuoteShare(ctx context.Context, lotID int64, sharePercent int) (*lots.ShareQuoteDTO, error) {
	panic("unimplemented")
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		Session: config.SessionConfig{
			Secret:     "secret",
			Issuer:     "issuer",
			TTLMinutes: 60,
			CookieName: "b2b_session",
			CookiePath: "/",
		},
	}
}

func newTestRouter(cfg *config.Config) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(Deps{
		Config:         cfg,
		Logger:         logg,
		HTTPMetrics:    metrics.NewHTTPMetrics(prometheus.NewRegistry()),
		AuthService:    stubAuthService{},
		ProductService: stubProductService{},
		SellersService: stubSellersService{},
		CatalogService: stubCatalogService{},
		LotsService:    stubLotsService{},
	})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for liveness got %d", resp.Code)
	}
}

func TestSellerGroupRejectsMissingSession(t *testing.T) {
	router := newTestRouter(testConfig())
	for _, path := range []string{"/api/v1/products", "/api/v1/sellers/current"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 without session on %s got %d", path, resp.Code)
		}
	}
}

func TestPublicSellerDetailBypassesSessionGroup(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sellers/7", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public seller detail got %d", resp.Code)
	}

	var envelope struct {
		Data sellers.SellerDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != 7 {
		t.Fatalf("expected seller 7 got %d", envelope.Data.ID)
	}
}

func TestCatalogBrowseIsPublic(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog?category=tape&sort=price-asc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for public catalog got %d", resp.Code)
	}
}

func TestLoginRejectsBadJSON(t *testing.T) {
	router := newTestRouter(testConfig())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid payload got %d", resp.Code)
	}
}
