package category

import (
	"Culinary-Assistant/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		WithTx(tx *gorm.DB) CategoryRepository
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id uint) error
		GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoriesByIDs(ctx context.Context, ids []uint) ([]*entities.Category, error)
		NameExists(ctx context.Context, name string, excludeID uint) (bool, error)
		CountRecipes(ctx context.Context, categoryID uint) (int64, error)
		CountCategories(ctx context.Context) (int64, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	return &categoryRepository{db: tx}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// DeleteCategory also drops the recipe associations pointing at the category.
func (r *categoryRepository) DeleteCategory(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Where("category_id = ?", id).
		Delete(&entities.RecipeCategory{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&entities.Category{}, id).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uint) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetCategoriesByIDs(ctx context.Context, ids []uint) ([]*entities.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) NameExists(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *categoryRepository) CountCategories(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Category{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) CountRecipes(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeCategory{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
