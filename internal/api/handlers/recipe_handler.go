package handlers

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/internal/api/presenters"
	"Culinary-Assistant/pkg/recipe"
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetRecipeByCode(c *fiber.Ctx) error
		GetRecipesByCategory(c *fiber.Ctx) error
		PublishRecipe(c *fiber.Ctx) error
		ArchiveRecipe(c *fiber.Ctx) error
		RestoreRecipe(c *fiber.Ctx) error
		ReturnRecipeToDraft(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
		ClearIngredients(c *fiber.Ctx) error
		AddCategoryToRecipe(c *fiber.Ctx) error
		RemoveCategoryFromRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
		GetCuisines(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// paramID parses a positive integer route parameter; shared by every handler
// in this package.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	req := domain.RecipeFilterRequest{
		SearchTerm: c.Query("search", ""),
		Status:     c.Query("status", ""),
		DishType:   c.Query("dish_type", ""),
		Cuisine:    c.Query("cuisine", ""),
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipes(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipeByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeByCode(c.Context(), code)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetRecipesByCategory(c *fiber.Ctx) error {
	categoryID, err := paramID(c, "category_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipesByCategory(c.Context(), categoryID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) PublishRecipe(c *fiber.Ctx) error {
	return h.transition(c, h.recipeService.PublishRecipe, domain.MessageSuccessPublishRecipe, domain.MessageFailedPublishRecipe)
}

func (h *recipeHandler) ArchiveRecipe(c *fiber.Ctx) error {
	return h.transition(c, h.recipeService.ArchiveRecipe, domain.MessageSuccessArchiveRecipe, domain.MessageFailedArchiveRecipe)
}

func (h *recipeHandler) RestoreRecipe(c *fiber.Ctx) error {
	return h.transition(c, h.recipeService.RestoreRecipe, domain.MessageSuccessRestoreRecipe, domain.MessageFailedRestoreRecipe)
}

func (h *recipeHandler) ReturnRecipeToDraft(c *fiber.Ctx) error {
	return h.transition(c, h.recipeService.ReturnRecipeToDraft, domain.MessageSuccessReturnToDraft, domain.MessageFailedReturnToDraft)
}

func (h *recipeHandler) transition(c *fiber.Ctx, step func(ctx context.Context, id uint) (domain.RecipeResponse, error), successMsg, failedMsg string) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, failedMsg, err)
	}

	res, err := step(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), failedMsg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, successMsg)
}

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	req := new(domain.AddIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.recipeService.AddIngredient(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *recipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveIngredient, err)
	}

	ingredientID, err := paramID(c, "ingredient_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveIngredient, err)
	}

	res, err := h.recipeService.RemoveIngredient(c.Context(), id, ingredientID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedRemoveIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveIngredient)
}

func (h *recipeHandler) ClearIngredients(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedClearIngredients, err)
	}

	res, err := h.recipeService.ClearIngredients(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedClearIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessClearIngredients)
}

func (h *recipeHandler) AddCategoryToRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	categoryID, err := paramID(c, "category_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddCategory, err)
	}

	res, err := h.recipeService.AddCategoryToRecipe(c.Context(), id, categoryID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedAddCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddCategory)
}

func (h *recipeHandler) RemoveCategoryFromRecipe(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCategory, err)
	}

	categoryID, err := paramID(c, "category_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveCategory, err)
	}

	res, err := h.recipeService.RemoveCategoryFromRecipe(c.Context(), id, categoryID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedRemoveCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveCategory)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipeImage, err)
	}

	req := new(domain.UploadRecipeImageRequest)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadRecipeImage, err)
	}

	res, err := h.recipeService.UploadRecipeImage(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUploadRecipeImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadRecipeImage)
}

func (h *recipeHandler) GetCuisines(c *fiber.Ctx) error {
	res, err := h.recipeService.GetCuisines(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetCuisines, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCuisines)
}
