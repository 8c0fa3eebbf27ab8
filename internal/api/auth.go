package api

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/adiwjy/denimstok/internal/auth"
)

// AuthHandler handles the login endpoint. Authentication is a single
// configured admin credential; the bcrypt hash is computed once at
// startup.
type AuthHandler struct {
	AdminUsername string
	AdminHash     []byte
	SessionSecret string
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username != h.AdminUsername ||
		bcrypt.CompareHashAndPassword(h.AdminHash, []byte(req.Password)) != nil {
		slog.Warn("login failed", "username", req.Username, "remote", r.RemoteAddr)
		jsonError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.GenerateToken(h.SessionSecret, req.Username)
	if err != nil {
		slog.Error("generating session token", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	slog.Info("user logged in", "username", req.Username)
	jsonResponse(w, http.StatusOK, loginResponse{
		Success:  true,
		Message:  "Login successful",
		Username: req.Username,
		Token:    token,
	})
}
