package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yahna8/store-and-inventory-microservice/internal/logger"
)

// Middleware rejects requests without a valid bearer token and stores the
// verified user id in the request context
func Middleware(v *Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(HeaderAuthorization)
			token, found := strings.CutPrefix(header, BearerPrefix)
			if !found || strings.TrimSpace(token) == "" {
				unauthorized(w, ErrMsgMissingToken)
				return
			}

			userID, err := v.Verify(strings.TrimSpace(token))
			if err != nil {
				logger.FromContext(r.Context()).Warn(LogMsgTokenRejected, "path", r.URL.Path, "error", err)
				unauthorized(w, ErrMsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
