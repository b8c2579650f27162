package domain

import (
	"fmt"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes        = "recipes retrieved successfully"
	MessageSuccessGetRecipeDetail   = "recipe detail retrieved successfully"
	MessageSuccessCreateRecipe      = "recipe created successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessPublishRecipe     = "recipe published successfully"
	MessageSuccessArchiveRecipe     = "recipe archived successfully"
	MessageSuccessRestoreRecipe     = "recipe restored successfully"
	MessageSuccessReturnToDraft     = "recipe returned to draft successfully"
	MessageSuccessAddIngredient     = "ingredient added successfully"
	MessageSuccessRemoveIngredient  = "ingredient removed successfully"
	MessageSuccessClearIngredients  = "ingredients cleared successfully"
	MessageSuccessAddCategory       = "category added to recipe successfully"
	MessageSuccessRemoveCategory    = "category removed from recipe successfully"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"
	MessageSuccessGetCuisines       = "cuisines retrieved successfully"

	MessageFailedGetRecipes        = "failed to retrieve recipes"
	MessageFailedGetRecipeDetail   = "failed to retrieve recipe detail"
	MessageFailedCreateRecipe      = "failed to create recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedPublishRecipe     = "failed to publish recipe"
	MessageFailedArchiveRecipe     = "failed to archive recipe"
	MessageFailedRestoreRecipe     = "failed to restore recipe"
	MessageFailedReturnToDraft     = "failed to return recipe to draft"
	MessageFailedAddIngredient     = "failed to add ingredient"
	MessageFailedRemoveIngredient  = "failed to remove ingredient"
	MessageFailedClearIngredients  = "failed to clear ingredients"
	MessageFailedAddCategory       = "failed to add category to recipe"
	MessageFailedRemoveCategory    = "failed to remove category from recipe"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"
	MessageFailedGetCuisines       = "failed to retrieve cuisines"

	ErrRecipeNotFound    = fmt.Errorf("recipe %w", ErrNotFound)
	ErrRecipeNotEditable = fmt.Errorf("recipe is not editable, only drafts can be edited: %w", ErrBusinessRule)
)

// ErrRecipeCodeConflict reports a taken business code; uniqueness spans all
// recipes and is checked by the service against the repository.
func ErrRecipeCodeConflict(code string) error {
	return fmt.Errorf("recipe with code %q already exists: %w", code, ErrBusinessRule)
}

type (
	CreateRecipeRequest struct {
		Code               string `json:"code" validate:"required,max=20"`
		Name               string `json:"name" validate:"required"`
		Cuisine            string `json:"cuisine" validate:"required"`
		DishType           string `json:"dish_type" validate:"required,oneof=FirstCourse MainCourse Salad Dessert Beverage Appetizer"`
		CookingTimeMinutes int    `json:"cooking_time_minutes" validate:"required,min=1"`
		Servings           int    `json:"servings" validate:"required,min=1"`
		Description        string `json:"description" validate:"omitempty"`
		Instructions       string `json:"instructions" validate:"omitempty"`
	}

	UpdateRecipeRequest struct {
		Code               string `json:"code" validate:"required,max=20"`
		Name               string `json:"name" validate:"required"`
		Cuisine            string `json:"cuisine" validate:"required"`
		DishType           string `json:"dish_type" validate:"required,oneof=FirstCourse MainCourse Salad Dessert Beverage Appetizer"`
		CookingTimeMinutes int    `json:"cooking_time_minutes" validate:"required,min=1"`
		Servings           int    `json:"servings" validate:"required,min=1"`
		Description        string `json:"description" validate:"omitempty"`
		Instructions       string `json:"instructions" validate:"omitempty"`
	}

	AddIngredientRequest struct {
		Name       string  `json:"name" validate:"required"`
		Amount     float64 `json:"amount" validate:"required,gt=0"`
		Unit       string  `json:"unit" validate:"required,oneof=Piece Gram Kilogram Milliliter Liter Tablespoon Teaspoon Package Cup"`
		IsOptional bool    `json:"is_optional"`
		Notes      string  `json:"notes" validate:"omitempty"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	RecipeFilterRequest struct {
		SearchTerm string `json:"search_term" validate:"omitempty"`
		Status     string `json:"status" validate:"omitempty,oneof=Draft Published Archived"`
		DishType   string `json:"dish_type" validate:"omitempty,oneof=FirstCourse MainCourse Salad Dessert Beverage Appetizer"`
		Cuisine    string `json:"cuisine" validate:"omitempty"`
	}

	RecipeIngredientResponse struct {
		ID         uint    `json:"id"`
		Name       string  `json:"name"`
		Amount     float64 `json:"amount"`
		Unit       string  `json:"unit"`
		IsOptional bool    `json:"is_optional"`
		Notes      string  `json:"notes,omitempty"`
	}

	RecipeCategoryResponse struct {
		ID          uint      `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		IconName    string    `json:"icon_name,omitempty"`
		AssignedAt  time.Time `json:"assigned_at"`
	}

	RecipeResponse struct {
		ID                 uint                       `json:"id"`
		Code               string                     `json:"code"`
		Name               string                     `json:"name"`
		Description        string                     `json:"description,omitempty"`
		Cuisine            string                     `json:"cuisine"`
		DishType           string                     `json:"dish_type"`
		Status             string                     `json:"status"`
		CookingTimeMinutes int                        `json:"cooking_time_minutes"`
		Servings           int                        `json:"servings"`
		Instructions       string                     `json:"instructions,omitempty"`
		ImagePath          string                     `json:"image_path,omitempty"`
		CanEdit            bool                       `json:"can_edit"`
		PublishedAt        *time.Time                 `json:"published_at,omitempty"`
		ArchivedAt         *time.Time                 `json:"archived_at,omitempty"`
		CreatedAt          time.Time                  `json:"created_at"`
		Ingredients        []RecipeIngredientResponse `json:"ingredients"`
		Categories         []RecipeCategoryResponse   `json:"categories"`
	}

	RecipeListItemResponse struct {
		ID                 uint   `json:"id"`
		Code               string `json:"code"`
		Name               string `json:"name"`
		Cuisine            string `json:"cuisine"`
		DishType           string `json:"dish_type"`
		Status             string `json:"status"`
		CookingTimeMinutes int    `json:"cooking_time_minutes"`
		IngredientsCount   int    `json:"ingredients_count"`
	}
)
