package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/fancyfont/internal/config"
	"github.com/JonMunkholm/fancyfont/internal/core"
)

// APIKeyAuth returns middleware that checks the X-API-Key header against
// cfg.APIKeys. When RequireAPIKey is false every request passes. When it is
// true and no keys are configured, every request is rejected.
func APIKeyAuth(cfg *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.RequireAPIKey {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("X-API-Key")
			switch {
			case key == "":
				slog.Warn("auth: missing API key", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				denyJSON(w, http.StatusUnauthorized, core.ErrMissingAPIKey)
			case !isValidAPIKey(key, cfg.APIKeys):
				slog.Warn("auth: invalid API key", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
				denyJSON(w, http.StatusForbidden, core.ErrInvalidAPIKey)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// denyJSON writes the user message for err in the same shape as the API's
// error responses.
func denyJSON(w http.ResponseWriter, status int, err error) {
	msg := core.MapError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   msg.Message,
		"message": msg.Message,
		"action":  msg.Action,
		"code":    msg.Code,
	})
}

// isValidAPIKey compares key against every configured key in constant time,
// so timing does not reveal which key matched.
func isValidAPIKey(key string, validKeys []string) bool {
	valid := 0
	for _, validKey := range validKeys {
		valid |= subtle.ConstantTimeCompare([]byte(key), []byte(validKey))
	}
	return valid == 1
}
