package middleware

import (
	"net/http"

	"github.com/RostislavK636/B2B-marketplace/pkg/config"
	"github.com/go-chi/cors"
)

// CORS returns middleware that applies the API's allowed origin policy.
// Credentials stay enabled because authentication rides on a cookie.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
