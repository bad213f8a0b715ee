package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	authsvc "github.com/RostislavK636/B2B-marketplace/internal/auth"
	"github.com/RostislavK636/B2B-marketplace/internal/sellers"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
)

type stubAuthService struct {
	registerResp *sellers.SellerDTO
	registerErr  error
	loginResp    *authsvc.LoginResult
	loginErr     error
	logoutErr    error
	statusResp   authsvc.SessionStatusDTO
	statusErr    error

	lastLogin     authsvc.LoginRequest
	lastLogout    string
	lastStatusSID string
}

func (s *stubAuthService) Register(ctx context.Context, req authsvc.RegisterRequest) (*sellers.SellerDTO, error) {
	return s.registerResp, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, req authsvc.LoginRequest) (*authsvc.LoginResult, error) {
	s.lastLogin = req
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.lastLogout = sessionID
	return s.logoutErr
}

func (s *stubAuthService) SessionStatus(ctx context.Context, sessionID string) (authsvc.SessionStatusDTO, error) {
	s.lastStatusSID = sessionID
	return s.statusResp, s.statusErr
}

type stubCookies struct{}

func (stubCookies) Cookie(sessionID string) *http.Cookie {
	return &http.Cookie{Name: "b2b_session", Value: sessionID, Path: "/", HttpOnly: true}
}

func (stubCookies) ClearedCookie() *http.Cookie {
	return &http.Cookie{Name: "b2b_session", Value: "", Path: "/", MaxAge: -1, HttpOnly: true}
}

func (stubCookies) CookieName() string { return "b2b_session" }

func TestAuthRegisterOpensSession(t *testing.T) {
	svc := &stubAuthService{
		registerResp: &sellers.SellerDTO{ID: 5, Email: "new@example.com"},
		loginResp: &authsvc.LoginResult{
			SessionID: "session-new",
			Seller:    sellers.SellerDTO{ID: 5, Email: "new@example.com"},
		},
	}
	handler := AuthRegister(svc, stubCookies{}, nil)

	body := `{"name":"Nina","surname":"Petrova","email":"new@example.com","phoneNumber":"+77001112233","password":"swordfish-123","company":"BoxWorks","taxpayerId":"123456789"}`
	req := httptest.NewRequest(http.MethodPost, "/registration", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.lastLogin.Email != "new@example.com" {
		t.Fatalf("expected login after registration, got %+v", svc.lastLogin)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "session-new" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
}

func TestAuthLoginSetsCookie(t *testing.T) {
	svc := &stubAuthService{
		loginResp: &authsvc.LoginResult{
			SessionID: "session-abc",
			Seller:    sellers.SellerDTO{ID: 1, Email: "login@example.com"},
		},
	}
	handler := AuthLogin(svc, stubCookies{}, nil)

	body := `{"email":"login@example.com","password":"swordfish-123"}`
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Value != "session-abc" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}

	var envelope struct {
		Data sellers.SellerDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Email != "login@example.com" {
		t.Fatalf("unexpected seller in response: %+v", envelope.Data)
	}
}

func TestAuthLoginRejectsUnknownFields(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogin(svc, stubCookies{}, nil)

	body := `{"email":"x@example.com","password":"pw","admin":true}`
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAuthLoginBadCredentials(t *testing.T) {
	svc := &stubAuthService{
		loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password"),
	}
	handler := AuthLogin(svc, stubCookies{}, nil)

	body := `{"email":"x@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("expected no cookie on failed login, got %v", cookies)
	}
}

func TestAuthLogoutClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogout(svc, stubCookies{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: "b2b_session", Value: "session-abc"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastLogout != "session-abc" {
		t.Fatalf("expected revoked session-abc got %q", svc.lastLogout)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %v", cookies)
	}
}

func TestAuthSessionWithoutCookie(t *testing.T) {
	svc := &stubAuthService{statusResp: authsvc.SessionStatusDTO{Authenticated: false}}
	handler := AuthSession(svc, stubCookies{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}

	var envelope struct {
		Data authsvc.SessionStatusDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Authenticated {
		t.Fatal("expected unauthenticated status")
	}
}
