package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lmachado/billfold/internal/client"
	"github.com/lmachado/billfold/internal/export"
	"github.com/lmachado/billfold/internal/http/middleware"
	"github.com/lmachado/billfold/internal/ledger"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/clients.csv", h.clientsCSV)
}

// ClientRoutes registers the per-client invoice download.
func (h *Handler) ClientRoutes(r chi.Router) {
	r.Get("/{clientID}/invoice.pdf", h.invoicePDF)
}

func (h *Handler) clientsCSV(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"clients_%s.csv\"", time.Now().Format("20060102")))

	if err := h.svc.ClientsCSV(r.Context(), accountID, w); err != nil {
		// Headers are already gone; all we can do is log.
		slog.Error("failed to stream clients csv", "error", err)
	}
}

func (h *Handler) invoicePDF(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("inline; filename=\"invoice_%s.pdf\"", clientID))

	if err := h.svc.InvoicePDF(r.Context(), clientID, accountID, w); err != nil {
		if errors.Is(err, client.ErrNotFound) || errors.Is(err, ledger.ErrClientNotFound) {
			w.Header().Del("Content-Type")
			w.Header().Del("Content-Disposition")
			http.Error(w, "client not found", http.StatusNotFound)

			return
		}

		slog.Error("failed to render invoice pdf", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
