package client_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmachado/billfold/internal/client"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	opening := decimal.RequireFromString("250.50")

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateClient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *client.Client) error {
			c.ID = uuid.New()
			return nil
		})

	svc := client.NewService(repo)

	got, err := svc.Create(context.Background(), accountID, client.CreateParams{
		Name:           "Acme Corp",
		Email:          "billing@acme.test",
		OpeningBalance: opening,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, accountID, got.AccountID)
	assert.True(t, got.Balance.Equal(opening))
}

func TestService_List_NormalizesFilter(t *testing.T) {
	type testCase struct {
		name string
		in   client.ListFilter
		want client.ListFilter
	}

	tests := []testCase{
		{
			name: "Defaults",
			in:   client.ListFilter{},
			want: client.ListFilter{Page: 1, PageSize: 10},
		},
		{
			name: "KeepsExplicitValues",
			in:   client.ListFilter{Name: "acme", Page: 3, PageSize: 25},
			want: client.ListFilter{Name: "acme", Page: 3, PageSize: 25},
		},
		{
			name: "NegativePage",
			in:   client.ListFilter{Page: -2, PageSize: 5},
			want: client.ListFilter{Page: 1, PageSize: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountID := uuid.New()

			repo := client.NewMockRepository(ctrl)
			repo.EXPECT().
				ListClients(gomock.Any(), accountID, tt.want).
				Return([]*client.Client{{ID: uuid.New()}}, 1, nil)

			svc := client.NewService(repo)

			got, total, err := svc.List(context.Background(), accountID, tt.in)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Equal(t, 1, total)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	accountID := uuid.New()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().
		DeleteClient(gomock.Any(), id, accountID).
		Return(client.ErrNotFound)

	svc := client.NewService(repo)
	assert.ErrorIs(t, svc.Delete(context.Background(), id, accountID), client.ErrNotFound)
}

func TestService_ListNegative(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()

	repo := client.NewMockRepository(ctrl)
	repo.EXPECT().
		ListNegativeClients(gomock.Any(), accountID).
		Return(nil, errors.New("db error"))

	svc := client.NewService(repo)

	_, err := svc.ListNegative(context.Background(), accountID)
	assert.Error(t, err)
}

func TestListFilter_Offset(t *testing.T) {
	f := client.ListFilter{Page: 3, PageSize: 10}
	assert.Equal(t, 20, f.Offset())
}
