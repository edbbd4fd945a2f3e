package ledger

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmachado/billfold/internal/http/middleware"
	"github.com/lmachado/billfold/internal/ledger"
)

type Handler struct {
	svc *ledger.Service
}

func NewHandler(svc *ledger.Service) *Handler {
	return &Handler{svc: svc}
}

// ClientRoutes registers the transaction endpoints nested under a client.
func (h *Handler) ClientRoutes(r chi.Router) {
	r.Post("/{clientID}/transactions", h.record)
	r.Delete("/{clientID}/transactions/{txID}", h.delete)
}

// SummaryRoutes registers the account-wide reporting endpoints.
func (h *Handler) SummaryRoutes(r chi.Router) {
	r.Get("/monthly", h.monthlySummary)
}

type recordTransactionRequest struct {
	Kind   ledger.Kind     `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var date time.Time

	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
	}

	tx, err := h.svc.Record(r.Context(), clientID, accountID, ledger.RecordParams{
		Kind:      req.Kind,
		Magnitude: req.Amount,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidAmount), errors.Is(err, ledger.ErrInvalidKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ledger.ErrClientNotFound):
			http.Error(w, "client not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(tx)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	clientID, err := uuid.Parse(chi.URLParam(r, "clientID"))
	if err != nil {
		http.Error(w, "invalid client id", http.StatusBadRequest)
		return
	}

	txID, err := uuid.Parse(chi.URLParam(r, "txID"))
	if err != nil {
		http.Error(w, "invalid transaction id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), txID, clientID, accountID); err != nil {
		if errors.Is(err, ledger.ErrNotFound) || errors.Is(err, ledger.ErrClientNotFound) {
			http.Error(w, "transaction not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	summary := h.svc.MonthlySummary(r.Context(), accountID)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toSummaryResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
