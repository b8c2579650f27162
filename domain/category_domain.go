package domain

import "fmt"

var (
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"
	MessageSuccessGetCategories  = "categories retrieved successfully"

	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"
	MessageFailedGetCategories  = "failed to retrieve categories"

	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
)

// ErrCategoryNameConflict reports a taken category name; uniqueness spans all
// categories and is checked by the service against the repository.
func ErrCategoryNameConflict(name string) error {
	return fmt.Errorf("category %q already exists: %w", name, ErrBusinessRule)
}

type (
	CategoryRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		IconName    string `json:"icon_name" validate:"omitempty"`
	}

	CategoryResponse struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		IconName    string `json:"icon_name,omitempty"`
		RecipeCount int    `json:"recipe_count"`
	}
)
