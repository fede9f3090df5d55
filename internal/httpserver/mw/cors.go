package mw

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS builds the cross-origin middleware from the configured origins.
// The origins list defaults to "*" upstream, so an unconfigured deployment
// is permissive.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
