package shoppinglist

import (
	"Culinary-Assistant/entities"
	"context"

	"gorm.io/gorm"
)

type (
	ShoppingListRepository interface {
		WithTx(tx *gorm.DB) ShoppingListRepository
		CreateList(ctx context.Context, list *entities.ShoppingList) error
		UpdateList(ctx context.Context, list *entities.ShoppingList) error
		DeleteList(ctx context.Context, id uint) error
		GetListByID(ctx context.Context, id uint) (*entities.ShoppingList, error)
		GetLists(ctx context.Context) ([]*entities.ShoppingList, error)
		GetListsByCompletion(ctx context.Context, completed bool) ([]*entities.ShoppingList, error)
		CountLists(ctx context.Context) (int64, error)
		CountListsByCompletion(ctx context.Context, completed bool) (int64, error)
		ReplaceItems(ctx context.Context, list *entities.ShoppingList) error
	}

	shoppingListRepository struct {
		db *gorm.DB
	}
)

func NewShoppingListRepository(db *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: db}
}

func (r *shoppingListRepository) WithTx(tx *gorm.DB) ShoppingListRepository {
	return &shoppingListRepository{db: tx}
}

func (r *shoppingListRepository) CreateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *shoppingListRepository) UpdateList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Save(list).Error
}

func (r *shoppingListRepository) DeleteList(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Select("Items").
		Delete(&entities.ShoppingList{ID: id}).Error
}

func (r *shoppingListRepository) GetListByID(ctx context.Context, id uint) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *shoppingListRepository) GetLists(ctx context.Context) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) GetListsByCompletion(ctx context.Context, completed bool) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("is_completed = ?", completed).
		Order("created_at desc").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *shoppingListRepository) CountLists(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.ShoppingList{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *shoppingListRepository) CountListsByCompletion(ctx context.Context, completed bool) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ShoppingList{}).
		Where("is_completed = ?", completed).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ReplaceItems persists the list's in-memory item set, dropping rows removed
// from the aggregate.
func (r *shoppingListRepository) ReplaceItems(ctx context.Context, list *entities.ShoppingList) error {
	if err := r.db.WithContext(ctx).
		Model(list).
		Association("Items").
		Unscoped().
		Replace(list.Items); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(list).Error
}
