package middleware

import (
	"errors"
	"net/http"

	"github.com/RostislavK636/B2B-marketplace/api/responses"
	"github.com/RostislavK636/B2B-marketplace/pkg/auth/session"
	pkgerrors "github.com/RostislavK636/B2B-marketplace/pkg/errors"
	"github.com/RostislavK636/B2B-marketplace/pkg/logger"
)

// SessionAuth resolves the cookie session and seeds the request context with
// the seller identity. Requests without a valid session are rejected.
func SessionAuth(cookieName string, resolver session.Resolver, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session"))
				return
			}

			claims, err := resolver.Resolve(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired"))
					return
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve session"))
				return
			}

			ctx := WithSellerID(r.Context(), claims.SellerID)
			ctx = WithSellerEmail(ctx, claims.Email)
			ctx = WithSessionID(ctx, cookie.Value)

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"seller_id": claims.SellerID,
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
