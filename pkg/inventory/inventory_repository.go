package inventory

import (
	"Culinary-Assistant/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	InventoryRepository interface {
		WithTx(tx *gorm.DB) InventoryRepository
		CreateItem(ctx context.Context, item *entities.InventoryItem) error
		UpdateItem(ctx context.Context, item *entities.InventoryItem) error
		DeleteItem(ctx context.Context, id uint) error
		GetItemByID(ctx context.Context, id uint) (*entities.InventoryItem, error)
		GetItems(ctx context.Context) ([]*entities.InventoryItem, error)
		SearchItemsByName(ctx context.Context, term string) ([]*entities.InventoryItem, error)
		GetItemsByStorageLocation(ctx context.Context, location string) ([]*entities.InventoryItem, error)
		GetItemsExpiringBefore(ctx context.Context, date time.Time) ([]*entities.InventoryItem, error)
		CountItems(ctx context.Context) (int64, error)
	}

	inventoryRepository struct {
		db *gorm.DB
	}
)

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) CreateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepository) UpdateItem(ctx context.Context, item *entities.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepository) DeleteItem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entities.InventoryItem{}, id).Error
}

func (r *inventoryRepository) GetItemByID(ctx context.Context, id uint) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) GetItems(ctx context.Context) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) SearchItemsByName(ctx context.Context, term string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) GetItemsByStorageLocation(ctx context.Context, location string) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("LOWER(storage_location) = LOWER(?)", location).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemsExpiringBefore returns items whose expiration date is on or before
// the given date; expired items are included.
func (r *inventoryRepository) GetItemsExpiringBefore(ctx context.Context, date time.Time) ([]*entities.InventoryItem, error) {
	var items []*entities.InventoryItem
	if err := r.db.WithContext(ctx).
		Where("expiration_date <= ?", date).
		Order("expiration_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) CountItems(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
