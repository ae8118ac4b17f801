package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/favorites-api/internal/favorites/domain"
)

func removeFixture(t *testing.T) (*fakeLedger, *fakeEvents, *RemoveFavoriteHandler) {
	t.Helper()

	owners := &fakeOwnerDirectory{owners: map[domain.Owner]bool{
		{Type: domain.OwnerTypeUser, ID: 1}: true,
	}}
	products := &fakeProducts{products: map[uint]*domain.Product{
		1842: {ID: 1842, Title: "Cafeteira", Price: decimal.RequireFromString("1842.30")},
	}}
	ledger := newFakeLedger()
	events := &fakeEvents{}
	handler := NewRemoveFavoriteHandler(owners, products, ledger, events)
	return ledger, events, handler
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()
	ledger, events, handler := removeFixture(t)

	owner := domain.Owner{Type: domain.OwnerTypeUser, ID: 1}
	favorite, err := ledger.EnsureForOwner(ctx, owner)
	require.NoError(t, err)
	_, err = ledger.AddProduct(ctx, favorite.ID, 1842)
	require.NoError(t, err)

	err = handler.Handle(ctx, RemoveFavoriteCommand{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   1,
		ProductID: 1842,
	})
	require.NoError(t, err)

	count, err := ledger.CountEntries(ctx, favorite.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	require.Len(t, events.removed, 1)
	assert.Equal(t, uint(1842), events.removed[0].ProductID)
}

func TestRemoveFavoriteNotInFavorites(t *testing.T) {
	ctx := context.Background()
	ledger, events, handler := removeFixture(t)

	err := handler.Handle(ctx, RemoveFavoriteCommand{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   1,
		ProductID: 1842,
	})
	assert.ErrorIs(t, err, domain.ErrNotInFavorites)
	assert.Empty(t, events.removed)

	// The list itself still exists and is empty
	favorite, err := ledger.EnsureForOwner(ctx, domain.Owner{Type: domain.OwnerTypeUser, ID: 1})
	require.NoError(t, err)
	count, err := ledger.CountEntries(ctx, favorite.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRemoveFavoriteOwnerNotFound(t *testing.T) {
	_, _, handler := removeFixture(t)

	err := handler.Handle(context.Background(), RemoveFavoriteCommand{
		OwnerType: domain.OwnerTypeCustomer,
		OwnerID:   999,
		ProductID: 1842,
	})
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestRemoveFavoriteUnknownProduct(t *testing.T) {
	_, _, handler := removeFixture(t)

	err := handler.Handle(context.Background(), RemoveFavoriteCommand{
		OwnerType: domain.OwnerTypeUser,
		OwnerID:   1,
		ProductID: 55555,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
