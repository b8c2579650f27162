package entities

import (
	"testing"
	"time"

	"Culinary-Assistant/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestShoppingListAddItemMerges(t *testing.T) {
	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)

	first, err := list.AddItem("Milk", 1, UnitLiter, nil, "", "")
	require.NoError(t, err)

	second, err := list.AddItem("milk", 1, UnitLiter, nil, "", "")
	require.NoError(t, err)

	assert.Same(t, first, second, "case-insensitive match merges instead of duplicating")
	assert.Equal(t, 2.0, first.Quantity)
	assert.Equal(t, 1, list.TotalItems())

	t.Run("purchased items are not merge targets", func(t *testing.T) {
		first.MarkAsPurchased()
		third, err := list.AddItem("Milk", 1, UnitLiter, nil, "", "")
		require.NoError(t, err)
		assert.NotSame(t, first, third)
		assert.Equal(t, 2, list.TotalItems())
	})

	t.Run("completed list refuses adds and removes", func(t *testing.T) {
		list.MarkAsCompleted()
		_, err := list.AddItem("Bread", 1, UnitPiece, nil, "", "")
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
		assert.ErrorIs(t, list.RemoveItem(first.ID), domain.ErrBusinessRule)
	})
}

func TestShoppingListCompletion(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	fixedNow(t, now)

	list, err := NewShoppingList("Weekly", "groceries for the week")
	require.NoError(t, err)

	list.MarkAsCompleted()
	assert.True(t, list.IsCompleted)
	require.NotNil(t, list.CompletedAt)
	assert.Equal(t, now, *list.CompletedAt)

	completedAt := *list.CompletedAt
	fixedNow(t, now.Add(time.Hour))
	list.MarkAsCompleted()
	assert.Equal(t, completedAt, *list.CompletedAt, "completing twice keeps the first timestamp")

	list.Reopen()
	assert.False(t, list.IsCompleted)
	assert.Nil(t, list.CompletedAt)
}

func TestShoppingItemPurchaseBookkeeping(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	fixedNow(t, now)

	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)
	item, err := list.AddItem("Eggs", 10, UnitPiece, nil, "", "")
	require.NoError(t, err)

	item.MarkAsPurchased()
	require.NotNil(t, item.PurchasedAt)
	assert.Equal(t, now, *item.PurchasedAt)

	purchasedAt := *item.PurchasedAt
	fixedNow(t, now.Add(time.Minute))
	item.MarkAsPurchased()
	assert.Equal(t, purchasedAt, *item.PurchasedAt, "idempotent")

	item.MarkAsNotPurchased()
	assert.False(t, item.IsPurchased)
	assert.Nil(t, item.PurchasedAt)
}

func TestShoppingListDerivedValues(t *testing.T) {
	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, list.CompletionPercentage(), "empty list is exactly zero")
	assert.True(t, list.TotalEstimatedPrice().IsZero())

	a, err := list.AddItem("Milk", 1, UnitLiter, priceOf("1.25"), "", "")
	require.NoError(t, err)
	_, err = list.AddItem("Bread", 1, UnitPiece, priceOf("2.40"), "", "")
	require.NoError(t, err)
	_, err = list.AddItem("Salt", 1, UnitPackage, nil, "", "")
	require.NoError(t, err)

	a.MarkAsPurchased()

	assert.Equal(t, 3, list.TotalItems())
	assert.Equal(t, 1, list.PurchasedItems())
	assert.InDelta(t, 100.0/3, list.CompletionPercentage(), 1e-9)
	assert.True(t, list.TotalEstimatedPrice().Equal(decimal.RequireFromString("3.65")), "unpriced items contribute zero")
}

func TestShoppingListClearPurchasedItems(t *testing.T) {
	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)

	milk, err := list.AddItem("Milk", 1, UnitLiter, nil, "", "")
	require.NoError(t, err)
	_, err = list.AddItem("Bread", 1, UnitPiece, nil, "", "")
	require.NoError(t, err)

	milk.MarkAsPurchased()
	list.MarkAsCompleted()

	// allowed regardless of completion state
	list.ClearPurchasedItems()
	require.Equal(t, 1, list.TotalItems())
	assert.Equal(t, "Bread", list.Items[0].Name)
}

func TestShoppingItemPrice(t *testing.T) {
	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)
	item, err := list.AddItem("Milk", 1, UnitLiter, nil, "", "")
	require.NoError(t, err)

	negative := decimal.RequireFromString("-0.01")
	assert.ErrorIs(t, item.SetEstimatedPrice(&negative), domain.ErrValidation)
	assert.Nil(t, item.EstimatedPrice)

	require.NoError(t, item.SetEstimatedPrice(priceOf("0.99")))
	require.NotNil(t, item.EstimatedPrice)
}

func TestShoppingListRemoveItem(t *testing.T) {
	list, err := NewShoppingList("Weekly", "")
	require.NoError(t, err)
	item, err := list.AddItem("Milk", 1, UnitLiter, nil, "", "")
	require.NoError(t, err)
	item.ID = 3

	assert.ErrorIs(t, list.RemoveItem(99), domain.ErrBusinessRule)
	require.NoError(t, list.RemoveItem(3))
	assert.Zero(t, list.TotalItems())
}
