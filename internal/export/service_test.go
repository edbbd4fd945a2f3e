package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmachado/billfold/internal/client"
	"github.com/lmachado/billfold/internal/export"
	"github.com/lmachado/billfold/internal/ledger"
)

func newService(t *testing.T) (*export.Service, *client.MockRepository, *ledger.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clientRepo := client.NewMockRepository(ctrl)
	ledgerRepo := ledger.NewMockRepository(ctrl)

	svc := export.NewService(client.NewService(clientRepo), ledger.NewService(ledgerRepo))

	return svc, clientRepo, ledgerRepo
}

func TestService_ClientsCSV(t *testing.T) {
	svc, clientRepo, _ := newService(t)

	accountID := uuid.New()
	id1 := uuid.New()
	id2 := uuid.New()

	clientRepo.EXPECT().
		ListClients(gomock.Any(), accountID, gomock.Any()).
		Return([]*client.Client{
			{ID: id1, Name: "Acme Corp", Email: "billing@acme.test", Balance: decimal.RequireFromString("150.25")},
			{ID: id2, Name: "Late Payer", Email: "late@payer.test", Balance: decimal.RequireFromString("-42.5")},
		}, 2, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ClientsCSV(context.Background(), accountID, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Client ID,Name,Email,Outstanding Balance", lines[0])
	assert.Equal(t, id1.String()+",Acme Corp,billing@acme.test,150.25", lines[1])
	assert.Equal(t, id2.String()+",Late Payer,late@payer.test,-42.50", lines[2])
}

func TestService_ClientsCSV_Empty(t *testing.T) {
	svc, clientRepo, _ := newService(t)

	accountID := uuid.New()

	clientRepo.EXPECT().
		ListClients(gomock.Any(), accountID, gomock.Any()).
		Return(nil, 0, nil)

	var buf bytes.Buffer
	require.NoError(t, svc.ClientsCSV(context.Background(), accountID, &buf))

	assert.Equal(t, "Client ID,Name,Email,Outstanding Balance\n", buf.String())
}

func TestService_InvoicePDF(t *testing.T) {
	svc, clientRepo, ledgerRepo := newService(t)

	accountID := uuid.New()
	clientID := uuid.New()

	clientRepo.EXPECT().
		GetClient(gomock.Any(), clientID, accountID).
		Return(&client.Client{
			ID:      clientID,
			Name:    "Acme Corp",
			Email:   "billing@acme.test",
			Balance: decimal.RequireFromString("80"),
		}, nil)

	ledgerRepo.EXPECT().
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

	var buf bytes.Buffer
	require.NoError(t, svc.InvoicePDF(context.Background(), clientID, accountID, &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output is not a PDF")
	assert.Greater(t, buf.Len(), 500)
}

func TestService_InvoicePDF_NotOwned(t *testing.T) {
	svc, clientRepo, _ := newService(t)

	accountID := uuid.New()
	clientID := uuid.New()

	clientRepo.EXPECT().
		GetClient(gomock.Any(), clientID, accountID).
		Return(nil, client.ErrNotFound)

	var buf bytes.Buffer
	err := svc.InvoicePDF(context.Background(), clientID, accountID, &buf)

	assert.ErrorIs(t, err, client.ErrNotFound)
	assert.Zero(t, buf.Len())
}
