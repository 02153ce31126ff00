package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/auth"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/application/ports"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/domain"
	domerrors "github.com/nyinyi2714/hotel-del-luna-api/internal/domain/errors"
	"github.com/nyinyi2714/hotel-del-luna-api/internal/infrastructure/http/middleware"
)

// AuthHandler handles registration, login, logout and the auth check.
type AuthHandler struct {
	register  *auth.Register
	login     *auth.Login
	logout    *auth.Logout
	issuer    ports.TokenIssuer
	blacklist ports.TokenBlacklist
	userRepo  ports.UserRepository
	validate  *validator.Validate
	log       zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, logout *auth.Logout, issuer ports.TokenIssuer, blacklist ports.TokenBlacklist, userRepo ports.UserRepository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:  register,
		login:     login,
		logout:    logout,
		issuer:    issuer,
		blacklist: blacklist,
		userRepo:  userRepo,
		validate:  validator.New(),
		log:       log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Firstname string `json:"firstname" validate:"required,max=100"`
		Lastname  string `json:"lastname" validate:"required,max=100"`
		Email     string `json:"email" validate:"required,email,max=254"`
		Password  string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "invalid email or password length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Firstname: body.Firstname,
		Lastname:  body.Lastname,
		Email:     email,
		Password:  password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		switch err {
		case domerrors.ErrUserExists:
			writeErr(w, http.StatusConflict, err.Error())
		case domerrors.ErrInvalidCredentials:
			writeErr(w, http.StatusBadRequest, "invalid email")
		default:
			h.log.Error().Err(err).Msg("register failed")
			writeErr(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "User registered successfully",
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
		"user": map[string]interface{}{
			"id":        result.User.ID.String(),
			"firstname": result.User.Firstname,
			"email":     result.User.Email,
		},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Email:    SanitizeEmail(body.Email),
		Password: SanitizePassword(body.Password),
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if err == domerrors.ErrInvalidCredentials {
			writeErrCode(w, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Login successful",
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
		"user": map[string]interface{}{
			"id":        result.User.ID.String(),
			"firstname": result.User.Firstname,
			"email":     result.User.Email,
		},
	})
}

// Logout revokes the presented token. Runs behind the auth middleware, so
// the token is known to be valid and unrevoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		writeErr(w, http.StatusUnauthorized, "missing or invalid authorization")
		return
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	if _, err := h.logout.Execute(r.Context(), auth.LogoutInput{Token: token}); err != nil {
		AuditLog(h.log, r, "user.logout", userID.String(), false, err.Error())
		if err == domerrors.ErrInvalidToken {
			writeErrCode(w, http.StatusUnauthorized, ErrCodeInvalidToken, err.Error())
			return
		}
		h.log.Error().Err(err).Msg("logout failed")
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	AuditLog(h.log, r, "user.logout", userID.String(), true, "")
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

// Check reports whether the request carries a valid, unrevoked token.
// Always answers 200; the body carries the verdict.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	unauthenticated := map[string]interface{}{"authenticated": false}
	token, ok := middleware.BearerToken(r)
	if !ok {
		writeJSON(w, http.StatusOK, unauthenticated)
		return
	}
	userIDStr, _, err := h.issuer.ValidateAccessToken(token)
	if err != nil {
		writeJSON(w, http.StatusOK, unauthenticated)
		return
	}
	if h.blacklist != nil {
		revoked, err := h.blacklist.IsRevoked(r.Context(), token)
		if err != nil || revoked {
			writeJSON(w, http.StatusOK, unauthenticated)
			return
		}
	}
	userID, err := domain.ParseUserID(userIDStr)
	if err != nil {
		writeJSON(w, http.StatusOK, unauthenticated)
		return
	}
	user, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil || user == nil {
		writeJSON(w, http.StatusOK, unauthenticated)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"firstname":     user.Firstname,
	})
}
