package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS lets the storefront call the API from any origin. The chat widget
// sends no credentials, so a wildcard origin is safe here.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	})
}
