package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SR3DR3/planncomm-v2/internal/models"
	"github.com/SR3DR3/planncomm-v2/internal/services"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Signup(context.Background(), &req)
	if err != nil {
		serviceError(w, err, "User not found", "Failed to create account")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.Service.Login(context.Background(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid employee number or password")
			return
		}
		serviceError(w, err, "User not found", "Failed to log in")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
