package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/reclamos/internal/auth"
	"github.com/dukerupert/reclamos/internal/validate"
)

type AuthHandler struct {
	authenticator *auth.Authenticator
	logger        *slog.Logger
}

func NewAuthHandler(authenticator *auth.Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authenticator: authenticator, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginUser is the public subset of the identity returned by login.
type loginUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	errs := validate.FieldErrors{}
	if req.Email == "" {
		errs["email"] = "is required"
	}
	if req.Password == "" {
		errs["password"] = "is required"
	}
	if len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	user, token, err := h.authenticator.Login(req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		writeMessage(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("login", "error", err)
		writeMessage(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":       loginUser{ID: user.ID, Name: user.Name, Email: user.Email},
		"token":      token,
		"token_type": "Bearer",
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromContext(r.Context())
	if err := h.authenticator.Logout(token); err != nil {
		// Revocation failures are storage errors; the caller still gets a
		// success response per the idempotent-logout contract.
		h.logger.Error("logout", "error", err)
	}
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		writeMessage(w, http.StatusUnauthorized, "unauthenticated")
		return
	}
	writeJSON(w, http.StatusOK, user)
}
