package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lmachado/billfold/internal/client"
	"github.com/lmachado/billfold/internal/ledger"
)

type clientResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(c *client.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Balance:   c.Balance,
		CreatedAt: c.CreatedAt,
	}
}

func toResponseList(clients []*client.Client) []clientResponse {
	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c)
	}

	return resp
}

type listClientsResponse struct {
	Clients    []clientResponse `json:"clients"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

type transactionResponse struct {
	ID        uuid.UUID       `json:"id"`
	ClientID  uuid.UUID       `json:"client_id"`
	Amount    decimal.Decimal `json:"amount"`
	Kind      ledger.Kind     `json:"kind"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

func toTransactionResponse(tx *ledger.Transaction) transactionResponse {
	return transactionResponse{
		ID:        tx.ID,
		ClientID:  tx.ClientID,
		Amount:    tx.Amount,
		Kind:      tx.Kind,
		Date:      tx.Date.Format(time.DateOnly),
		CreatedAt: tx.CreatedAt,
	}
}

type clientDetailsResponse struct {
	clientResponse
	Transactions []transactionResponse `json:"transactions"`
}
