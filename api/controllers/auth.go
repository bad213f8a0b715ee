package controllers

import (
	"net/http"

	"github.com/RostislavK636/B2B-marketplace/api/responses"
	"github.com/RostislavK636/B2B-marketplace/api/validators"
	authsvc "github.com/RostislavK636/B2B-marketplace/internal/auth"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
)

// sessionCookies is the cookie surface of the session manager.
type sessionCookies interface {
	Cookie(sessionID string) *http.Cookie
	ClearedCookie() *http.Cookie
	CookieName() string
}

// AuthRegister creates a new seller account and opens its first session, so
// a fresh registration lands already logged in.
func AuthRegister(svc authsvc.Service, cookies sessionCookies, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cookies == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.RegisterRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		seller, err := svc.Register(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), authsvc.LoginRequest{
			Email:    payload.Email,
			Password: payload.Password,
		})
		if err != nil {
			// The account exists; the client can still log in manually.
			if logg != nil {
				logg.Warn(r.Context(), "session open after registration failed")
			}
			responses.WriteSuccessStatus(w, http.StatusCreated, seller)
			return
		}

		http.SetCookie(w, cookies.Cookie(result.SessionID))
		responses.WriteSuccessStatus(w, http.StatusCreated, result.Seller)
	}
}

// AuthLogin verifies credentials and sets the session cookie.
func AuthLogin(svc authsvc.Service, cookies sessionCookies, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cookies == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		http.SetCookie(w, cookies.Cookie(result.SessionID))
		responses.WriteSuccess(w, result.Seller)
	}
}

// AuthLogout revokes the cookie session and clears the cookie. Logging out
// without a session still succeeds.
func AuthLogout(svc authsvc.Service, cookies sessionCookies, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cookies == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		if cookie, err := r.Cookie(cookies.CookieName()); err == nil && cookie.Value != "" {
			if err := svc.Logout(r.Context(), cookie.Value); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
		}

		http.SetCookie(w, cookies.ClearedCookie())
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

// AuthSession reports whether the caller holds an active session.
func AuthSession(svc authsvc.Service, cookies sessionCookies, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || cookies == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		sessionID := ""
		if cookie, err := r.Cookie(cookies.CookieName()); err == nil {
			sessionID = cookie.Value
		}

		status, err := svc.SessionStatus(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, status)
	}
}
