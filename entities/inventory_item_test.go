package entities

import (
	"testing"
	"time"

	"Culinary-Assistant/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInventoryItem(t *testing.T) {
	item, err := NewInventoryItem("  Cheese  ", 0.5, UnitKilogram, time.Date(2025, 3, 20, 14, 30, 0, 0, time.UTC), " Fridge ")
	require.NoError(t, err)

	assert.Equal(t, "Cheese", item.Name, "name is trimmed")
	assert.Equal(t, 0.5, item.Quantity)
	assert.Equal(t, UnitKilogram, item.Unit)
	assert.Equal(t, "Fridge", item.StorageLocation)
	assert.Equal(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), item.ExpirationDate, "expiration is date-only")

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewInventoryItem("   ", 1, UnitPiece, time.Now(), "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		_, err := NewInventoryItem("Cheese", -1, UnitPiece, time.Now(), "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("zero quantity allowed", func(t *testing.T) {
		item, err := NewInventoryItem("Cheese", 0, UnitPiece, time.Now(), "")
		require.NoError(t, err)
		assert.Equal(t, 0.0, item.Quantity)
	})
}

func TestInventoryItemExpiration(t *testing.T) {
	today := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	fixedNow(t, today)

	t.Run("expiring in two days", func(t *testing.T) {
		item, err := NewInventoryItem("Cheese", 1, UnitPiece, today.AddDate(0, 0, 2), "")
		require.NoError(t, err)

		assert.False(t, item.IsExpired())
		assert.True(t, item.IsExpiringSoon())
		assert.Equal(t, 2, item.DaysUntilExpiration())
	})

	t.Run("expired yesterday", func(t *testing.T) {
		item, err := NewInventoryItem("Cheese", 1, UnitPiece, today.AddDate(0, 0, -1), "")
		require.NoError(t, err)

		assert.True(t, item.IsExpired())
		assert.False(t, item.IsExpiringSoon())
		assert.Equal(t, -1, item.DaysUntilExpiration())
	})

	t.Run("expires today", func(t *testing.T) {
		item, err := NewInventoryItem("Cheese", 1, UnitPiece, today, "")
		require.NoError(t, err)

		assert.False(t, item.IsExpired())
		assert.True(t, item.IsExpiringSoon())
		assert.Equal(t, 0, item.DaysUntilExpiration())
	})

	t.Run("outside the warning window", func(t *testing.T) {
		item, err := NewInventoryItem("Cheese", 1, UnitPiece, today.AddDate(0, 0, ExpiringSoonDays+1), "")
		require.NoError(t, err)

		assert.False(t, item.IsExpired())
		assert.False(t, item.IsExpiringSoon())
	})
}

func TestInventoryItemUseReplenish(t *testing.T) {
	item, err := NewInventoryItem("Milk", 2, UnitLiter, time.Now().AddDate(0, 0, 5), "")
	require.NoError(t, err)

	t.Run("use then replenish round-trips", func(t *testing.T) {
		require.NoError(t, item.Use(1.5))
		assert.Equal(t, 0.5, item.Quantity)
		require.NoError(t, item.Replenish(1.5))
		assert.Equal(t, 2.0, item.Quantity)
	})

	t.Run("use beyond stock fails and leaves quantity unchanged", func(t *testing.T) {
		err := item.Use(5)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBusinessRule)

		var stockErr *domain.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 2.0, stockErr.Available)
		assert.Equal(t, 5.0, stockErr.Requested)
		assert.Equal(t, 2.0, item.Quantity)
	})

	t.Run("non-positive amounts fail", func(t *testing.T) {
		assert.ErrorIs(t, item.Use(0), domain.ErrValidation)
		assert.ErrorIs(t, item.Use(-1), domain.ErrValidation)
		assert.ErrorIs(t, item.Replenish(0), domain.ErrValidation)
		assert.ErrorIs(t, item.Replenish(-1), domain.ErrValidation)
		assert.Equal(t, 2.0, item.Quantity)
	})

	t.Run("using everything empties the stock", func(t *testing.T) {
		require.NoError(t, item.Use(2))
		assert.Equal(t, 0.0, item.Quantity)
	})
}
