package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hoverhouse/hoverhouse-api/internal/httputil"
	"github.com/hoverhouse/hoverhouse-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		httputil.RespondError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	if err := h.authService.Signup(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			httputil.RespondError(w, "Email already registered", http.StatusBadRequest)
			return
		}
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondMessage(w, "User created", http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		httputil.RespondError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httputil.RespondError(w, "Invalid email or password", http.StatusBadRequest)
			return
		}
		httputil.RespondError(w, "Server error", http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, LoginResponse{Token: token}, http.StatusOK)
}
