package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	appErrors "github.com/saishivaaditya/market/internal/errors"
	"github.com/saishivaaditya/market/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	err := h.Service.Register(r.Context(), body.Name, body.Email, body.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
	case errors.Is(err, appErrors.ErrMissingFields) || errors.Is(err, appErrors.ErrEmailTaken):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("⚠️ register failed:", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)

	user, err := h.Service.Login(r.Context(), body.Email, body.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Logged in successfully",
			"user": map[string]any{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	case errors.Is(err, appErrors.ErrInvalidCredentials):
		writeJSONError(w, http.StatusUnauthorized, err.Error())
	default:
		log.Println("⚠️ login failed:", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
