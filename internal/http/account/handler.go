package account

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lmachado/billfold/internal/account"
	"github.com/lmachado/billfold/internal/http/middleware"
)

type Handler struct {
	svc      *account.Service
	secret   []byte
	tokenTTL time.Duration
}

func NewHandler(svc *account.Service, secret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{svc: svc, secret: secret, tokenTTL: tokenTTL}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type credentialsRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

type accountResponse struct {
	ID     uuid.UUID `json:"id"`
	Handle string    `json:"handle"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Register(r.Context(), req.Handle, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, account.ErrDuplicateHandle):
			http.Error(w, "handle already in use", http.StatusConflict)
		case errors.Is(err, account.ErrInvalidCredentials):
			http.Error(w, "handle and password are required", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(accountResponse{ID: acc.ID, Handle: acc.Handle}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	acc, err := h.svc.Authenticate(r.Context(), req.Handle, req.Password)
	if err != nil {
		if errors.Is(err, account.ErrInvalidCredentials) {
			http.Error(w, "incorrect handle or password", http.StatusUnauthorized)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	token, err := middleware.IssueToken(h.secret, acc.ID, h.tokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(loginResponse{Token: token}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
