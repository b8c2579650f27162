package handlers

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/internal/api/presenters"
	"Culinary-Assistant/pkg/shoppinglist"
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ShoppingListHandler interface {
		CreateList(c *fiber.Ctx) error
		UpdateList(c *fiber.Ctx) error
		DeleteList(c *fiber.Ctx) error
		GetLists(c *fiber.Ctx) error
		GetListDetails(c *fiber.Ctx) error
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		RemoveItem(c *fiber.Ctx) error
		MarkItemPurchased(c *fiber.Ctx) error
		MarkItemNotPurchased(c *fiber.Ctx) error
		CompleteList(c *fiber.Ctx) error
		ReopenList(c *fiber.Ctx) error
		ClearPurchasedItems(c *fiber.Ctx) error
	}

	shoppingListHandler struct {
		shoppingListService shoppinglist.ShoppingListService
		validator           *validator.Validate
	}
)

func NewShoppingListHandler(shoppingListService shoppinglist.ShoppingListService, validator *validator.Validate) ShoppingListHandler {
	return &shoppingListHandler{
		shoppingListService: shoppingListService,
		validator:           validator,
	}
}

func (h *shoppingListHandler) CreateList(c *fiber.Ctx) error {
	req := new(domain.CreateShoppingListRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateShoppingList, err)
	}

	res, err := h.shoppingListService.CreateList(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedCreateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateShoppingList)
}

func (h *shoppingListHandler) UpdateList(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	req := new(domain.UpdateShoppingListRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingList, err)
	}

	res, err := h.shoppingListService.UpdateList(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUpdateShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingList)
}

func (h *shoppingListHandler) DeleteList(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteShoppingList, err)
	}

	if err := h.shoppingListService.DeleteList(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedDeleteShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteShoppingList)
}

// GetLists serves all lists by default; ?status=active or ?status=completed
// narrows by completion state.
func (h *shoppingListHandler) GetLists(c *fiber.Ctx) error {
	var (
		res []domain.ShoppingListSummaryResponse
		err error
	)

	switch c.Query("status", "all") {
	case "active":
		res, err = h.shoppingListService.GetActiveLists(c.Context())
	case "completed":
		res, err = h.shoppingListService.GetCompletedLists(c.Context())
	default:
		res, err = h.shoppingListService.GetLists(c.Context())
	}
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetShoppingLists, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingLists)
}

func (h *shoppingListHandler) GetListDetails(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.shoppingListService.GetListByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func (h *shoppingListHandler) AddItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	req := new(domain.AddShoppingItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddShoppingItem, err)
	}

	res, err := h.shoppingListService.AddItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedAddShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddShoppingItem)
}

func (h *shoppingListHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	itemID, err := paramID(c, "item_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	req := new(domain.UpdateShoppingItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateShoppingItem, err)
	}

	res, err := h.shoppingListService.UpdateItem(c.Context(), id, itemID, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUpdateShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateShoppingItem)
}

func (h *shoppingListHandler) RemoveItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveShoppingItem, err)
	}

	itemID, err := paramID(c, "item_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveShoppingItem, err)
	}

	res, err := h.shoppingListService.RemoveItem(c.Context(), id, itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedRemoveShoppingItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveShoppingItem)
}

func (h *shoppingListHandler) MarkItemPurchased(c *fiber.Ctx) error {
	return h.toggleItem(c, h.shoppingListService.MarkItemPurchased, domain.MessageSuccessMarkItemPurchased, domain.MessageFailedMarkItemPurchased)
}

func (h *shoppingListHandler) MarkItemNotPurchased(c *fiber.Ctx) error {
	return h.toggleItem(c, h.shoppingListService.MarkItemNotPurchased, domain.MessageSuccessMarkItemUnpurchased, domain.MessageFailedMarkItemUnpurchased)
}

func (h *shoppingListHandler) toggleItem(c *fiber.Ctx, step func(ctx context.Context, listID, itemID uint) (domain.ShoppingListResponse, error), successMsg, failedMsg string) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, failedMsg, err)
	}

	itemID, err := paramID(c, "item_id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, failedMsg, err)
	}

	res, err := step(c.Context(), id, itemID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), failedMsg, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, successMsg)
}

func (h *shoppingListHandler) CompleteList(c *fiber.Ctx) error {
	return h.toggleList(c, h.shoppingListService.CompleteList, domain.MessageSuccessCompleteList, domain.MessageFailedCompleteList)
}

func (h *shoppingListHandler) ReopenList(c *fiber.Ctx) error {
	return h.toggleList(c, h.shoppingListService.ReopenList, domain.MessageSuccessReopenList, domain.MessageFailedReopenList)
}

func (h *shoppingListHandler) ClearPurchasedItems(c *fiber.Ctx) error {
	return h.toggleList(c, h.shoppingListService.ClearPurchasedItems, domain.MessageSuccessClearPurchased, domain.MessageFailedClearPurchased)
}

func (h *shoppingListHandler) toggleList(c *fiber.Ctx, step func(ctx context.Context, id uint) (domain.ShoppingListResponse, error), successMsg, failedMsg string) error {
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
