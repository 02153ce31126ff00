package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
)

// AuthValidator validates the JWT, rejects blacklisted tokens and sets the
// user id in context (see UserIDFromContext).
type AuthValidator struct {
	issuer    ports.TokenIssuer
	blacklist ports.TokenBlacklist
	log       zerolog.Logger
}

func NewAuthValidator(issuer ports.TokenIssuer, blacklist ports.TokenBlacklist, log zerolog.Logger) *AuthValidator {
	return &AuthValidator{issuer: issuer, blacklist: blacklist, log: log}
}

// Handler rejects the request before any handler side effect when the
// identity cannot be established.
func (m *AuthValidator) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			writeAuthErr(w, "missing or invalid authorization")
			return
		}
		userIDStr, _, err := m.issuer.ValidateAccessToken(token)
		if err != nil {
			writeAuthErr(w, "invalid token")
			return
		}
		if m.blacklist != nil {
			revoked, err := m.blacklist.IsRevoked(r.Context(), token)
			if err != nil {
				// Blacklist outage must not let revoked tokens through.
				m.log.Error().Err(err).Msg("token blacklist check failed")
				writeAuthErr(w, "unable to verify token")
				return
			}
			if revoked {
				writeAuthErr(w, "token has been revoked")
				return
			}
		}
		userID, err := domain.ParseUserID(userIDStr)
		if err != nil {
			writeAuthErr(w, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(auth, "Bearer "), true
}

func writeAuthErr(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message, "code": "unauthorized"})
}
