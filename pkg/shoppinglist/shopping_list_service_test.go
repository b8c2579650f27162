package shoppinglist

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeShoppingListRepository struct {
	lists      map[uint]*entities.ShoppingList
	nextListID uint
	nextItemID uint
}

func newFakeShoppingListRepository() *fakeShoppingListRepository {
	return &fakeShoppingListRepository{lists: map[uint]*entities.ShoppingList{}, nextListID: 1, nextItemID: 1}
}

func (f *fakeShoppingListRepository) WithTx(tx *gorm.DB) ShoppingListRepository { return f }

func (f *fakeShoppingListRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	list.ID = f.nextListID
	f.nextListID++
	f.lists[list.ID] = list
	return nil
}

func (f *fakeShoppingListRepository) UpdateList(ctx context.Context, list *entities.ShoppingList) error {
	f.lists[list.ID] = list
	return nil
}

func (f *fakeShoppingListRepository) DeleteList(ctx context.Context, id uint) error {
	delete(f.lists, id)
	return nil
}

func (f *fakeShoppingListRepository) GetListByID(ctx context.Context, id uint) (*entities.ShoppingList, error) {
	list, ok := f.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return list, nil
}

func (f *fakeShoppingListRepository) GetLists(ctx context.Context) ([]*entities.ShoppingList, error) {
	var out []*entities.ShoppingList
	for _, list := range f.lists {
		out = append(out, list)
	}
	return out, nil
}

func (f *fakeShoppingListRepository) GetListsByCompletion(ctx context.Context, completed bool) ([]*entities.ShoppingList, error) {
	var out []*entities.ShoppingList
	for _, list := range f.lists {
		if list.IsCompleted == completed {
			out = append(out, list)
		}
	}
	return out, nil
}

func (f *fakeShoppingListRepository) CountLists(ctx context.Context) (int64, error) {
	return int64(len(f.lists)), nil
}

func (f *fakeShoppingListRepository) CountListsByCompletion(ctx context.Context, completed bool) (int64, error) {
	lists, _ := f.GetListsByCompletion(ctx, completed)
	return int64(len(lists)), nil
}

// ReplaceItems mimics gorm assigning primary keys to newly inserted rows.
func (f *fakeShoppingListRepository) ReplaceItems(ctx context.Context, list *entities.ShoppingList) error {
	for _, item := range list.Items {
		if item.ID == 0 {
			item.ID = f.nextItemID
			f.nextItemID++
		}
	}
	f.lists[list.ID] = list
	return nil
}

type fakeUnitOfWork struct{}

func (f *fakeUnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newTestService() ShoppingListService {
	return NewShoppingListService(newFakeShoppingListRepository(), &fakeUnitOfWork{})
}

func TestShoppingListServiceAddItem(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	list, err := svc.CreateList(ctx, domain.CreateShoppingListRequest{Name: "Weekly"})
	require.NoError(t, err)

	res, err := svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{
		Name:           "Milk",
		Quantity:       1,
		Unit:           "Liter",
		EstimatedPrice: "1.25",
	})
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	require.NotNil(t, res.Items[0].EstimatedPrice)
	assert.True(t, res.Items[0].EstimatedPrice.Equal(decimal.RequireFromString("1.25")))

	t.Run("same name merges quantities", func(t *testing.T) {
		res, err := svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{
			Name:     "milk",
			Quantity: 2,
			Unit:     "Liter",
		})
		require.NoError(t, err)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 3.0, res.Items[0].Quantity)
	})

	t.Run("unparseable price is a validation error", func(t *testing.T) {
		_, err := svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{
			Name:           "Bread",
			Quantity:       1,
			Unit:           "Piece",
			EstimatedPrice: "two euros",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestShoppingListServicePurchaseAndComplete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	list, err := svc.CreateList(ctx, domain.CreateShoppingListRequest{Name: "Weekly"})
	require.NoError(t, err)

	withMilk, err := svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{Name: "Milk", Quantity: 1, Unit: "Liter"})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{Name: "Bread", Quantity: 1, Unit: "Piece"})
	require.NoError(t, err)

	milkID := withMilk.Items[0].ID
	require.NotZero(t, milkID)

	res, err := svc.MarkItemPurchased(ctx, list.ID, milkID)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PurchasedItems)
	assert.InDelta(t, 50.0, res.CompletionPercentage, 1e-9)

	completed, err := svc.CompleteList(ctx, list.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.CompletedAt)

	t.Run("completed list refuses new items", func(t *testing.T) {
		_, err := svc.AddItem(ctx, list.ID, domain.AddShoppingItemRequest{Name: "Eggs", Quantity: 10, Unit: "Piece"})
		assert.ErrorIs(t, err, domain.ErrBusinessRule)
	})

	t.Run("clearing purchased items works while completed", func(t *testing.T) {
		res, err := svc.ClearPurchasedItems(ctx, list.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalItems)
		assert.Equal(t, "Bread", res.Items[0].Name)
	})

	t.Run("reopen clears the completion mark", func(t *testing.T) {
		res, err := svc.ReopenList(ctx, list.ID)
		require.NoError(t, err)
		assert.False(t, res.IsCompleted)
		assert.Nil(t, res.CompletedAt)
	})
}

func TestShoppingListServiceMissingTargets(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.GetListByID(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := svc.CreateList(ctx, domain.CreateShoppingListRequest{Name: "Weekly"})
	require.NoError(t, err)

	_, err = svc.MarkItemPurchased(ctx, list.ID, 123)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
