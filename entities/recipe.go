package entities

import (
	"Culinary-Assistant/domain"
	"fmt"
	"strings"
	"time"
)

// RecipeCodeMaxLength bounds the business code of a recipe.
const RecipeCodeMaxLength = 20

// Recipe is the central aggregate root. It owns its ingredients and its
// category associations and runs the Draft → Published → Archived workflow.
// Field setters validate in isolation; callers gate them on CanEdit. The
// ingredient operations self-enforce the Draft requirement, the category
// operations deliberately do not.
type Recipe struct {
	ID                 uint         `gorm:"primarykey" json:"id"`
	Code               string       `gorm:"size:20;uniqueIndex" json:"code"`
	Name               string       `json:"name"`
	Description        string       `json:"description,omitempty"`
	Cuisine            string       `json:"cuisine"`
	DishType           DishType     `json:"dish_type"`
	Status             RecipeStatus `json:"status"`
	CookingTimeMinutes int          `json:"cooking_time_minutes"`
	Servings           int          `json:"servings"`
	Instructions       string       `gorm:"type:text" json:"instructions,omitempty"`
	ImagePath          string       `json:"image_path,omitempty"`
	PublishedAt        *time.Time   `json:"published_at,omitempty"`
	ArchivedAt         *time.Time   `json:"archived_at,omitempty"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"ingredients"`
	Categories  []*RecipeCategory   `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"categories"`
	Timestamp
}

// RecipeIngredient is owned by its Recipe; names are unique within the recipe,
// case-insensitively.
type RecipeIngredient struct {
	ID         uint            `gorm:"primarykey" json:"id"`
	RecipeID   uint            `gorm:"index" json:"recipe_id"`
	Name       string          `json:"name"`
	Amount     float64         `json:"amount"`
	Unit       MeasurementUnit `json:"unit"`
	IsOptional bool            `json:"is_optional"`
	Notes      string          `json:"notes,omitempty"`
	Timestamp
}

// RecipeCategory is the association record of the recipe↔category N-N link.
// It carries only ids and the assignment time; category details are resolved
// through the category repository, never embedded here.
type RecipeCategory struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	RecipeID   uint      `gorm:"index:idx_recipe_category,unique" json:"recipe_id"`
	CategoryID uint      `gorm:"index:idx_recipe_category,unique" json:"category_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

func NewRecipe(code, name, cuisine string, dishType DishType, cookingTimeMinutes, servings int, description, instructions string) (*Recipe, error) {
	r := &Recipe{
		Status:       StatusDraft,
		Description:  strings.TrimSpace(description),
		Instructions: strings.TrimSpace(instructions),
	}
	if err := r.SetCode(code); err != nil {
		return nil, err
	}
	if err := r.SetName(name); err != nil {
		return nil, err
	}
	if err := r.SetCuisine(cuisine); err != nil {
		return nil, err
	}
	if err := r.SetCookingTime(cookingTimeMinutes); err != nil {
		return nil, err
	}
	if err := r.SetServings(servings); err != nil {
		return nil, err
	}
	r.DishType = dishType
	return r, nil
}

// SetCode normalizes the business code to upper case.
func (r *Recipe) SetCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("recipe code must not be empty: %w", domain.ErrValidation)
	}
	if len(code) > RecipeCodeMaxLength {
		return fmt.Errorf("recipe code must not exceed %d characters: %w", RecipeCodeMaxLength, domain.ErrValidation)
	}
	r.Code = strings.ToUpper(code)
	r.touch()
	return nil
}

func (r *Recipe) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("recipe name must not be empty: %w", domain.ErrValidation)
	}
	r.Name = name
	r.touch()
	return nil
}

func (r *Recipe) SetCuisine(cuisine string) error {
	cuisine = strings.TrimSpace(cuisine)
	if cuisine == "" {
		return fmt.Errorf("cuisine must not be empty: %w", domain.ErrValidation)
	}
	r.Cuisine = cuisine
	r.touch()
	return nil
}

func (r *Recipe) SetDishType(dishType DishType) {
	r.DishType = dishType
	r.touch()
}

func (r *Recipe) SetDescription(description string) {
	r.Description = strings.TrimSpace(description)
	r.touch()
}

func (r *Recipe) SetInstructions(instructions string) {
	r.Instructions = strings.TrimSpace(instructions)
	r.touch()
}

func (r *Recipe) SetCookingTime(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("cooking time must be positive, got %d: %w", minutes, domain.ErrValidation)
	}
	r.CookingTimeMinutes = minutes
	r.touch()
	return nil
}

func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return fmt.Errorf("servings must be positive, got %d: %w", servings, domain.ErrValidation)
	}
	r.Servings = servings
	r.touch()
	return nil
}

func (r *Recipe) SetImagePath(imagePath string) {
	r.ImagePath = imagePath
	r.touch()
}

// CanEdit reports whether field edits are allowed; only drafts are editable.
func (r *Recipe) CanEdit() bool {
	return r.Status == StatusDraft
}

// Publish moves Draft → Published. A recipe needs at least one ingredient and
// non-empty instructions before it can be published.
func (r *Recipe) Publish() error {
	if r.Status != StatusDraft {
		return fmt.Errorf("cannot publish recipe with status %q, only Draft recipes can be published: %w", r.Status, domain.ErrBusinessRule)
	}
	if len(r.Ingredients) == 0 {
		return fmt.Errorf("cannot publish recipe %q without ingredients: %w", r.Code, domain.ErrBusinessRule)
	}
	if strings.TrimSpace(r.Instructions) == "" {
		return fmt.Errorf("cannot publish recipe %q without cooking instructions: %w", r.Code, domain.ErrBusinessRule)
	}
	now := nowFunc().UTC()
	r.Status = StatusPublished
	r.PublishedAt = &now
	r.touch()
	return nil
}

// Archive moves Published → Archived.
func (r *Recipe) Archive() error {
	if r.Status != StatusPublished {
		return fmt.Errorf("cannot archive recipe with status %q, only Published recipes can be archived: %w", r.Status, domain.ErrBusinessRule)
	}
	now := nowFunc().UTC()
	r.Status = StatusArchived
	r.ArchivedAt = &now
	r.touch()
	return nil
}

// Restore moves Archived → Published, keeping the original PublishedAt.
func (r *Recipe) Restore() error {
	if r.Status != StatusArchived {
		return fmt.Errorf("cannot restore recipe with status %q, only Archived recipes can be restored: %w", r.Status, domain.ErrBusinessRule)
	}
	r.Status = StatusPublished
	r.ArchivedAt = nil
	r.touch()
	return nil
}

// ReturnToDraft moves Published or Archived back to Draft, clearing both
// workflow timestamps.
func (r *Recipe) ReturnToDraft() error {
	if r.Status == StatusDraft {
		return fmt.Errorf("recipe %q is already a draft: %w", r.Code, domain.ErrBusinessRule)
	}
	r.Status = StatusDraft
	r.PublishedAt = nil
	r.ArchivedAt = nil
	r.touch()
	return nil
}

// AddIngredient appends a new owned ingredient. Only drafts can be modified,
// and ingredient names are unique within the recipe (case-insensitive).
func (r *Recipe) AddIngredient(name string, amount float64, unit MeasurementUnit, isOptional bool, notes string) (*RecipeIngredient, error) {
	if r.Status != StatusDraft {
		return nil, fmt.Errorf("cannot add ingredients to a recipe with status %q, return it to draft first: %w", r.Status, domain.ErrBusinessRule)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("ingredient name must not be empty: %w", domain.ErrValidation)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("ingredient amount must be positive, got %g: %w", amount, domain.ErrValidation)
	}
	for _, existing := range r.Ingredients {
		if strings.EqualFold(existing.Name, name) {
			return nil, fmt.Errorf("ingredient %q is already part of recipe %q: %w", name, r.Code, domain.ErrBusinessRule)
		}
	}
	ingredient := &RecipeIngredient{
		RecipeID:   r.ID,
		Name:       name,
		Amount:     amount,
		Unit:       unit,
		IsOptional: isOptional,
		Notes:      strings.TrimSpace(notes),
	}
	r.Ingredients = append(r.Ingredients, ingredient)
	r.touch()
	return ingredient, nil
}

func (r *Recipe) RemoveIngredient(ingredientID uint) error {
	if r.Status != StatusDraft {
		return fmt.Errorf("cannot remove ingredients from a recipe with status %q: %w", r.Status, domain.ErrBusinessRule)
	}
	for idx, ingredient := range r.Ingredients {
		if ingredient.ID == ingredientID {
			r.Ingredients = append(r.Ingredients[:idx], r.Ingredients[idx+1:]...)
			r.touch()
			return nil
		}
	}
	return fmt.Errorf("ingredient with ID %d is not part of recipe %q: %w", ingredientID, r.Code, domain.ErrBusinessRule)
}

func (r *Recipe) ClearIngredients() error {
	if r.Status != StatusDraft {
		return fmt.Errorf("cannot clear ingredients of a recipe with status %q: %w", r.Status, domain.ErrBusinessRule)
	}
	r.Ingredients = nil
	r.touch()
	return nil
}

// AddCategory associates a category by id; adding an existing association is
// a no-op. Category tagging is allowed in any workflow state.
func (r *Recipe) AddCategory(categoryID uint) {
	for _, rc := range r.Categories {
		if rc.CategoryID == categoryID {
			return
		}
	}
	r.Categories = append(r.Categories, &RecipeCategory{
		RecipeID:   r.ID,
		CategoryID: categoryID,
		AssignedAt: nowFunc().UTC(),
	})
	r.touch()
}

// RemoveCategory drops the association by id; removing a missing association
// is a no-op.
func (r *Recipe) RemoveCategory(categoryID uint) {
	for idx, rc := range r.Categories {
		if rc.CategoryID == categoryID {
			r.Categories = append(r.Categories[:idx], r.Categories[idx+1:]...)
			r.touch()
			return
		}
	}
}

// HasCategory reports whether the recipe is associated with the category.
func (r *Recipe) HasCategory(categoryID uint) bool {
	for _, rc := range r.Categories {
		if rc.CategoryID == categoryID {
			return true
		}
	}
	return false
}
