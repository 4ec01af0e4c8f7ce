package router

import (
	"encoding/json"
	"net/http"

	"github.com/nairobell/feed/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		userID := domain.UserIDFromContext(r.Context())
		if userID == "" {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use endpoint requiring auth without user ID",
				"path", r.URL.Path)
			writeJSONMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeJSONMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
