package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmachado/billfold/internal/client"
	clientHandler "github.com/lmachado/billfold/internal/http/client"
	"github.com/lmachado/billfold/internal/http/middleware"
	"github.com/lmachado/billfold/internal/ledger"
)

type fixture struct {
	clientRepo *client.MockRepository
	ledgerRepo *ledger.MockRepository
	router     http.Handler
}

func newFixture(t *testing.T, accountID uuid.UUID) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clientRepo := client.NewMockRepository(ctrl)
	ledgerRepo := ledger.NewMockRepository(ctrl)

	h := clientHandler.NewHandler(client.NewService(clientRepo), ledger.NewService(ledgerRepo))

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithAccount(req.Context(), accountID)))
		})
	})
	r.Route("/clients", h.Routes)

	return &fixture{clientRepo: clientRepo, ledgerRepo: ledgerRepo, router: r}
}

func TestHandler_Create(t *testing.T) {
	accountID := uuid.New()
	f := newFixture(t, accountID)

	f.clientRepo.EXPECT().
		CreateClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, c *client.Client) error {
			c.ID = uuid.New()
			c.CreatedAt = time.Now()
			return nil
		})

	body := `{"name":"Acme Corp","email":"billing@acme.test","balance":150.25}`
	req := httptest.NewRequest(http.MethodPost, "/clients/", strings.NewReader(body))
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Name    string          `json:"name"`
		Balance decimal.Decimal `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "150.25", resp.Balance.String())
}

func TestHandler_Create_MissingName(t *testing.T) {
	f := newFixture(t, uuid.New())

	req := httptest.NewRequest(http.MethodPost, "/clients/", strings.NewReader(`{"email":"x@y.test"}`))
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_List_Pagination(t *testing.T) {
	accountID := uuid.New()
	f := newFixture(t, accountID)

	clients := []*client.Client{
		{ID: uuid.New(), Name: "Acme East"},
		{ID: uuid.New(), Name: "Acme West"},
	}

	f.clientRepo.EXPECT().
		ListClients(gomock.Any(), accountID, client.ListFilter{Name: "acme", Page: 2, PageSize: 5}).
		Return(clients, 12, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/?name=acme&page=2&page_size=5", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Clients    []json.RawMessage `json:"clients"`
		Total      int               `json:"total"`
		Page       int               `json:"page"`
		PageSize   int               `json:"page_size"`
		TotalPages int               `json:"total_pages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Clients, 2)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages) // ceil(12/5)
}

func TestHandler_List_InvalidPage(t *testing.T) {
	f := newFixture(t, uuid.New())

	req := httptest.NewRequest(http.MethodGet, "/clients/?page=zero", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Get(t *testing.T) {
	accountID := uuid.New()
	clientID := uuid.New()

	t.Run("WithTransactions", func(t *testing.T) {
		f := newFixture(t, accountID)

		f.clientRepo.EXPECT().
			GetClient(gomock.Any(), clientID, accountID).
			Return(&client.Client{
				ID:      clientID,
				Name:    "Acme Corp",
				Balance: decimal.RequireFromString("80"),
			}, nil)

		f.ledgerRepo.EXPECT().
			ListTransactions(gomock.Any(), clientID, accountID).
			Return([]*ledger.Transaction{
				{
					ID:       uuid.New(),
					ClientID: clientID,
					Amount:   decimal.RequireFromString("30"),
					Kind:     ledger.KindInvoice,
					Date:     time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String(), nil)
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Name         string `json:"name"`
			Transactions []struct {
				Kind string `json:"kind"`
				Date string `json:"date"`
			} `json:"transactions"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Acme Corp", resp.Name)
		require.Len(t, resp.Transactions, 1)
		assert.Equal(t, "invoice", resp.Transactions[0].Kind)
		assert.Equal(t, "2024-02-20", resp.Transactions[0].Date)
	})

	t.Run("NotOwnedIs404", func(t *testing.T) {
		f := newFixture(t, accountID)

		f.clientRepo.EXPECT().
			GetClient(gomock.Any(), clientID, accountID).
			Return(nil, client.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/clients/"+clientID.String(), nil)
		rec := httptest.NewRecorder()

		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Delete(t *testing.T) {
	accountID := uuid.New()
	clientID := uuid.New()

	f := newFixture(t, accountID)

	f.clientRepo.EXPECT().
		DeleteClient(gomock.Any(), clientID, accountID).
		Return(client.ErrNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/clients/"+clientID.String(), nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_ListNegative(t *testing.T) {
	accountID := uuid.New()
	f := newFixture(t, accountID)

	f.clientRepo.EXPECT().
		ListNegativeClients(gomock.Any(), accountID).
		Return([]*client.Client{
			{ID: uuid.New(), Name: "Late Payer", Balance: decimal.RequireFromString("-42.50")},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/clients/negative", nil)
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []struct {
		Balance decimal.Decimal `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "-42.5", resp[0].Balance.String())
}
