package recipe

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/entities"
	"Culinary-Assistant/internal/utils/storage"
	"Culinary-Assistant/pkg/category"
	"Culinary-Assistant/pkg/database"
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) error
		GetRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.RecipeListItemResponse, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeResponse, error)
		GetRecipeByCode(ctx context.Context, code string) (domain.RecipeResponse, error)
		GetRecipesByCategory(ctx context.Context, categoryID uint) ([]domain.RecipeListItemResponse, error)
		PublishRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error)
		ArchiveRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error)
		RestoreRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error)
		ReturnRecipeToDraft(ctx context.Context, id uint) (domain.RecipeResponse, error)
		AddIngredient(ctx context.Context, recipeID uint, req domain.AddIngredientRequest) (domain.RecipeResponse, error)
		RemoveIngredient(ctx context.Context, recipeID, ingredientID uint) (domain.RecipeResponse, error)
		ClearIngredients(ctx context.Context, recipeID uint) (domain.RecipeResponse, error)
		AddCategoryToRecipe(ctx context.Context, recipeID, categoryID uint) (domain.RecipeResponse, error)
		RemoveCategoryFromRecipe(ctx context.Context, recipeID, categoryID uint) (domain.RecipeResponse, error)
		UploadRecipeImage(ctx context.Context, recipeID uint, req domain.UploadRecipeImageRequest) (domain.RecipeResponse, error)
		GetCuisines(ctx context.Context) ([]string, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
		uow                database.UnitOfWork
		s3                 storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository, uow database.UnitOfWork, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		uow:                uow,
		s3:                 s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := entities.NewRecipe(
		req.Code,
		req.Name,
		req.Cuisine,
		entities.DishType(req.DishType),
		req.CookingTimeMinutes,
		req.Servings,
		req.Description,
		req.Instructions,
	)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	taken, err := s.recipeRepository.CodeExists(ctx, recipe.Code, 0)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if taken {
		return domain.RecipeResponse{}, domain.ErrRecipeCodeConflict(recipe.Code)
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toDetail(ctx, recipe)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if !recipe.CanEdit() {
		return domain.RecipeResponse{}, domain.ErrRecipeNotEditable
	}

	if err := recipe.SetCode(req.Code); err != nil {
		return domain.RecipeResponse{}, err
	}
	taken, err := s.recipeRepository.CodeExists(ctx, recipe.Code, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if taken {
		return domain.RecipeResponse{}, domain.ErrRecipeCodeConflict(recipe.Code)
	}

	if err := recipe.SetName(req.Name); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := recipe.SetCuisine(req.Cuisine); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := recipe.SetCookingTime(req.CookingTimeMinutes); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := recipe.SetServings(req.Servings); err != nil {
		return domain.RecipeResponse{}, err
	}
	recipe.SetDishType(entities.DishType(req.DishType))
	recipe.SetDescription(req.Description)
	recipe.SetInstructions(req.Instructions)

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}

	return s.toDetail(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	if _, err := s.getRecipe(ctx, id); err != nil {
		return err
	}
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.recipeRepository.WithTx(tx).DeleteRecipe(ctx, id)
	})
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.RecipeListItemResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, RecipeFilter{
		SearchTerm: req.SearchTerm,
		Status:     entities.RecipeStatus(req.Status),
		DishType:   entities.DishType(req.DishType),
		Cuisine:    req.Cuisine,
	})
	if err != nil {
		return nil, err
	}
	return toListItems(recipes), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) GetRecipeByCode(ctx context.Context, code string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByCode(ctx, code)
	if err != nil {
		if database.IsNotFound(err) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, categoryID uint) ([]domain.RecipeListItemResponse, error) {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID); err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	recipes, err := s.recipeRepository.GetRecipesByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toListItems(recipes), nil
}

func (s *recipeService) PublishRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	return s.transition(ctx, id, (*entities.Recipe).Publish)
}

func (s *recipeService) ArchiveRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	return s.transition(ctx, id, (*entities.Recipe).Archive)
}

func (s *recipeService) RestoreRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	return s.transition(ctx, id, (*entities.Recipe).Restore)
}

func (s *recipeService) ReturnRecipeToDraft(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	return s.transition(ctx, id, (*entities.Recipe).ReturnToDraft)
}

func (s *recipeService) transition(ctx context.Context, id uint, step func(*entities.Recipe) error) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := step(recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) AddIngredient(ctx context.Context, recipeID uint, req domain.AddIngredientRequest) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if _, err := recipe.AddIngredient(req.Name, req.Amount, entities.MeasurementUnit(req.Unit), req.IsOptional, req.Notes); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.saveIngredients(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) RemoveIngredient(ctx context.Context, recipeID, ingredientID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := recipe.RemoveIngredient(ingredientID); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.saveIngredients(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) ClearIngredients(ctx context.Context, recipeID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := recipe.ClearIngredients(); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.saveIngredients(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) AddCategoryToRecipe(ctx context.Context, recipeID, categoryID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID); err != nil {
		if database.IsNotFound(err) {
			return domain.RecipeResponse{}, domain.ErrCategoryNotFound
		}
		return domain.RecipeResponse{}, err
	}

	recipe.AddCategory(categoryID)

	if err := s.saveCategories(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) RemoveCategoryFromRecipe(ctx context.Context, recipeID, categoryID uint) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe.RemoveCategory(categoryID)

	if err := s.saveCategories(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID uint, req domain.UploadRecipeImageRequest) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	fileName := fmt.Sprintf("recipe-%d-%s", recipe.ID, uuid.New().String())
	var objectKey string
	var uploadErr error

	if recipe.ImagePath != "" {
		existingKey := s.s3.GetObjectKeyFromLink(recipe.ImagePath)
		if existingKey != "" {
			objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
	} else {
		objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.RecipeResponse{}, uploadErr
	}

	recipe.SetImagePath(s.s3.GetPublicLinkKey(objectKey))

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.toDetail(ctx, recipe)
}

func (s *recipeService) GetCuisines(ctx context.Context) ([]string, error) {
	return s.recipeRepository.GetCuisines(ctx)
}

func (s *recipeService) getRecipe(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) saveIngredients(ctx context.Context, recipe *entities.Recipe) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.recipeRepository.WithTx(tx).ReplaceIngredients(ctx, recipe)
	})
}

func (s *recipeService) saveCategories(ctx context.Context, recipe *entities.Recipe) error {
	return s.uow.Do(ctx, func(tx *gorm.DB) error {
		return s.recipeRepository.WithTx(tx).ReplaceCategories(ctx, recipe)
	})
}

// toDetail resolves category details through the category repository; the
// association records on the aggregate only carry ids.
func (s *recipeService) toDetail(ctx context.Context, recipe *entities.Recipe) (domain.RecipeResponse, error) {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, ingredient := range recipe.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			ID:         ingredient.ID,
			Name:       ingredient.Name,
			Amount:     ingredient.Amount,
			Unit:       string(ingredient.Unit),
			IsOptional: ingredient.IsOptional,
			Notes:      ingredient.Notes,
		})
	}

	categoryIDs := make([]uint, 0, len(recipe.Categories))
	assignedAt := make(map[uint]int, len(recipe.Categories))
	for idx, rc := range recipe.Categories {
		categoryIDs = append(categoryIDs, rc.CategoryID)
		assignedAt[rc.CategoryID] = idx
	}

	categories := make([]domain.RecipeCategoryResponse, 0, len(categoryIDs))
	resolved, err := s.categoryRepository.GetCategoriesByIDs(ctx, categoryIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	for _, c := range resolved {
		categories = append(categories, domain.RecipeCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			IconName:    c.IconName,
			AssignedAt:  recipe.Categories[assignedAt[c.ID]].AssignedAt,
		})
	}

	return domain.RecipeResponse{
		ID:                 recipe.ID,
		Code:               recipe.Code,
		Name:               recipe.Name,
		Description:        recipe.Description,
		Cuisine:            recipe.Cuisine,
		DishType:           string(recipe.DishType),
		Status:             string(recipe.Status),
		CookingTimeMinutes: recipe.CookingTimeMinutes,
		Servings:           recipe.Servings,
		Instructions:       recipe.Instructions,
		ImagePath:          recipe.ImagePath,
		CanEdit:            recipe.CanEdit(),
		PublishedAt:        recipe.PublishedAt,
		ArchivedAt:         recipe.ArchivedAt,
		CreatedAt:          recipe.CreatedAt,
		Ingredients:        ingredients,
		Categories:         categories,
	}, nil
}

func toListItems(recipes []*entities.Recipe) []domain.RecipeListItemResponse {
	response := make([]domain.RecipeListItemResponse, 0, len(recipes))
	for _, recipe := range recipes {
		response = append(response, domain.RecipeListItemResponse{
			ID:                 recipe.ID,
			Code:               recipe.Code,
			Name:               recipe.Name,
			Cuisine:            recipe.Cuisine,
			DishType:           string(recipe.DishType),
			Status:             string(recipe.Status),
			CookingTimeMinutes: recipe.CookingTimeMinutes,
			IngredientsCount:   len(recipe.Ingredients),
		})
	}
	return response
}
