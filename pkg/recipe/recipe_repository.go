package recipe

import (
	"Culinary-Assistant/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		WithTx(tx *gorm.DB) RecipeRepository
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeByCode(ctx context.Context, code string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter RecipeFilter) ([]*entities.Recipe, error)
		GetRecipesByCategory(ctx context.Context, categoryID uint) ([]*entities.Recipe, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error)
		CodeExists(ctx context.Context, code string, excludeID uint) (bool, error)
		CountByStatus(ctx context.Context, status entities.RecipeStatus) (int64, error)
		CountRecipes(ctx context.Context) (int64, error)
		GetCuisines(ctx context.Context) ([]string, error)
		ReplaceIngredients(ctx context.Context, recipe *entities.Recipe) error
		ReplaceCategories(ctx context.Context, recipe *entities.Recipe) error
	}

	// RecipeFilter narrows GetRecipes; zero values mean "no constraint".
	RecipeFilter struct {
		SearchTerm string
		Status     entities.RecipeStatus
		DishType   entities.DishType
		Cuisine    string
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) WithTx(tx *gorm.DB) RecipeRepository {
	return &recipeRepository{db: tx}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Select("Ingredients", "Categories").
		Delete(&entities.Recipe{ID: id}).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Categories").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByCode(ctx context.Context, code string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Preload("Categories").
		Where("code = ?", code).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter RecipeFilter) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).Preload("Ingredients")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.DishType != "" {
		query = query.Where("dish_type = ?", filter.DishType)
	}
	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) = LOWER(?)", filter.Cuisine)
	}
	if filter.SearchTerm != "" {
		pattern := "%" + filter.SearchTerm + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, categoryID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Joins("JOIN recipe_categories ON recipes.id = recipe_categories.recipe_id").
		Where("recipe_categories.category_id = ?", categoryID).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecentRecipes(ctx context.Context, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("created_at desc").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CodeExists(ctx context.Context, code string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("code = ?", code)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CountByStatus(ctx context.Context, status entities.RecipeStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetCuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("cuisine").
		Order("cuisine asc").
		Pluck("cuisine", &cuisines).Error; err != nil {
		return nil, err
	}
	return cuisines, nil
}

// ReplaceIngredients persists the recipe's in-memory ingredient set, dropping
// rows that were removed from the aggregate.
func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).
		Model(recipe).
		Association("Ingredients").
		Unscoped().
		Replace(recipe.Ingredients); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(recipe).Error
}

// ReplaceCategories does the same for the category associations.
func (r *recipeRepository) ReplaceCategories(ctx context.Context, recipe *entities.Recipe) error {
	if err := r.db.WithContext(ctx).
		Model(recipe).
		Association("Categories").
		Unscoped().
		Replace(recipe.Categories); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(recipe).Error
}
