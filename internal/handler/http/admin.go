package http

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	apperrors "github.com/nyrazari/storefront/pkg/errors"
)

// AdminHandler handles the admin login endpoint. A correct password is
// exchanged for the static admin token that the catalog management endpoints
// expect in X-Admin-Token.
type AdminHandler struct {
	password string
	token    string
	logger   *slog.Logger
}

// NewAdminHandler creates a new admin HTTP handler.
func NewAdminHandler(password, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		password: password,
		token:    token,
		logger:   logger,
	}
}

// LoginRequest is the JSON request body for admin login.
type LoginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/v1/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeInvalidBody(w, err)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) != 1 {
		h.logger.WarnContext(r.Context(), "admin login rejected")
		writeError(w, r, h.logger, apperrors.Unauthorized("invalid password"))
		return
	}

	h.logger.InfoContext(r.Context(), "admin login accepted")
	writeJSON(w, http.StatusOK, response{Data: map[string]string{"token": h.token}})
}
