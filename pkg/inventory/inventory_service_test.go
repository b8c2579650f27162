package inventory

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	items  map[uint]*entities.InventoryItem
	nextID uint
}

func newFakeInventoryRepository() *fakeInventoryRepository {
	return &fakeInventoryRepository{items: map[uint]*entities.InventoryItem{}, nextID: 1}
}

func (f *fakeInventoryRepository) WithTx(tx *gorm.DB) InventoryRepository { return f }

func (f *fakeInventoryRepository) CreateItem(ctx context.Context, item *entities.InventoryItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepository) DeleteItem(ctx context.Context, id uint) error {
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepository) GetItemByID(ctx context.Context, id uint) (*entities.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (f *fakeInventoryRepository) GetItems(ctx context.Context) ([]*entities.InventoryItem, error) {
	var out []*entities.InventoryItem
	for _, item := range f.items {
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeInventoryRepository) SearchItemsByName(ctx context.Context, term string) ([]*entities.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) GetItemsByStorageLocation(ctx context.Context, location string) ([]*entities.InventoryItem, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) GetItemsExpiringBefore(ctx context.Context, date time.Time) ([]*entities.InventoryItem, error) {
	var out []*entities.InventoryItem
	for _, item := range f.items {
		if !item.ExpirationDate.After(date) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepository) CountItems(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func fixedNow(t *testing.T, at time.Time) {
	t.Helper()
	restore := entities.SetNowFunc(func() time.Time { return at })
	t.Cleanup(restore)
}

func addItem(t *testing.T, svc InventoryService, name, expiration string) domain.InventoryItemResponse {
	t.Helper()
	res, err := svc.AddItem(context.Background(), domain.AddInventoryItemRequest{
		Name:           name,
		Quantity:       2,
		Unit:           "Piece",
		ExpirationDate: expiration,
	})
	require.NoError(t, err)
	return res
}

func TestInventoryServiceAddItem(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())

	res := addItem(t, svc, "Milk", "2025-03-12")
	assert.Equal(t, "Milk", res.Name)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), res.ExpirationDate)

	t.Run("malformed date is rejected", func(t *testing.T) {
		_, err := svc.AddItem(context.Background(), domain.AddInventoryItemRequest{
			Name:           "Eggs",
			Quantity:       10,
			Unit:           "Piece",
			ExpirationDate: "12.03.2025",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestInventoryServiceExpirationBuckets(t *testing.T) {
	fixedNow(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	svc := NewInventoryService(newFakeInventoryRepository())
	ctx := context.Background()

	addItem(t, svc, "Old yogurt", "2025-03-08")
	addItem(t, svc, "Milk", "2025-03-12")
	addItem(t, svc, "Frozen peas", "2025-06-01")

	expired, err := svc.GetExpiredItems(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "Old yogurt", expired[0].Name)
	assert.True(t, expired[0].IsExpired)
	assert.Equal(t, -2, expired[0].DaysUntilExpiration)

	expiring, err := svc.GetExpiringSoonItems(ctx)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "Milk", expiring[0].Name)
	assert.True(t, expiring[0].IsExpiringSoon)
}

func TestInventoryServiceStockOperations(t *testing.T) {
	svc := NewInventoryService(newFakeInventoryRepository())
	ctx := context.Background()

	item := addItem(t, svc, "Flour", "2026-01-01")

	used, err := svc.UseItem(ctx, item.ID, domain.StockAmountRequest{Amount: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 0.5, used.Quantity)

	_, err = svc.UseItem(ctx, item.ID, domain.StockAmountRequest{Amount: 5})
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0.5, stockErr.Available)
	assert.ErrorIs(t, err, domain.ErrBusinessRule)

	replenished, err := svc.ReplenishItem(ctx, item.ID, domain.StockAmountRequest{Amount: 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, replenished.Quantity)

	_, err = svc.UseItem(ctx, 99, domain.StockAmountRequest{Amount: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDigestBody(t *testing.T) {
	fixedNow(t, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	expired, err := entities.NewInventoryItem("Old yogurt", 1, entities.UnitPiece, time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	expiring, err := entities.NewInventoryItem("Milk", 1, entities.UnitLiter, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)

	body := buildDigestBody([]*entities.InventoryItem{expired}, []*entities.InventoryItem{expiring})
	assert.Contains(t, body, "Old yogurt")
	assert.Contains(t, body, "expired on 2025-03-08")
	assert.Contains(t, body, "expires on 2025-03-12")
	assert.Contains(t, body, "2 day(s) left")
}
