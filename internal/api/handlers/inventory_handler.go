package handlers

import (
	"Culinary-Assistant/domain"
	"Culinary-Assistant/internal/api/presenters"
	"Culinary-Assistant/pkg/inventory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	InventoryHandler interface {
		AddItem(c *fiber.Ctx) error
		UpdateItem(c *fiber.Ctx) error
		DeleteItem(c *fiber.Ctx) error
		GetItems(c *fiber.Ctx) error
		GetItemDetails(c *fiber.Ctx) error
		GetExpiredItems(c *fiber.Ctx) error
		GetExpiringSoonItems(c *fiber.Ctx) error
		UseItem(c *fiber.Ctx) error
		ReplenishItem(c *fiber.Ctx) error
		SendExpiryDigest(c *fiber.Ctx) error
	}

	inventoryHandler struct {
		inventoryService inventory.InventoryService
		validator        *validator.Validate
	}
)

func NewInventoryHandler(inventoryService inventory.InventoryService, validator *validator.Validate) InventoryHandler {
	return &inventoryHandler{
		inventoryService: inventoryService,
		validator:        validator,
	}
}

func (h *inventoryHandler) AddItem(c *fiber.Ctx) error {
	req := new(domain.AddInventoryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddInventoryItem, err)
	}

	res, err := h.inventoryService.AddItem(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedAddInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddInventoryItem)
}

func (h *inventoryHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, err)
	}

	req := new(domain.UpdateInventoryItemRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateInventoryItem, err)
	}

	res, err := h.inventoryService.UpdateItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUpdateInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateInventoryItem)
}

func (h *inventoryHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteInventoryItem, err)
	}

	if err := h.inventoryService.DeleteItem(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedDeleteInventoryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteInventoryItem)
}

// GetItems also serves name search and storage-location filtering through
// query parameters; filters are mutually exclusive, search wins.
func (h *inventoryHandler) GetItems(c *fiber.Ctx) error {
	var (
		res []domain.InventoryItemResponse
		err error
	)

	switch {
	case c.Query("search") != "":
		res, err = h.inventoryService.SearchItems(c.Context(), c.Query("search"))
	case c.Query("location") != "":
		res, err = h.inventoryService.GetItemsByStorageLocation(c.Context(), c.Query("location"))
	default:
		res, err = h.inventoryService.GetItems(c.Context())
	}
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetItemDetails(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetInventoryItems, err)
	}

	res, err := h.inventoryService.GetItemByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetExpiredItems(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetExpiredItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) GetExpiringSoonItems(c *fiber.Ctx) error {
	res, err := h.inventoryService.GetExpiringSoonItems(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedGetInventoryItems, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetInventoryItems)
}

func (h *inventoryHandler) UseItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUseInventoryItem, err)
	}

	req := new(domain.StockAmountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUseInventoryItem, err)
	}

	res, err := h.inventoryService.UseItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedUseInventoryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUseInventoryItem)
}

func (h *inventoryHandler) ReplenishItem(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplenishItem, err)
	}

	req := new(domain.StockAmountRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedReplenishItem, err)
	}

	res, err := h.inventoryService.ReplenishItem(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedReplenishItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessReplenishItem)
}

func (h *inventoryHandler) SendExpiryDigest(c *fiber.Ctx) error {
	req := new(domain.SendExpiryDigestRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendExpiryDigest, err)
	}

	if err := h.inventoryService.SendExpiryDigest(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusOf(err), domain.MessageFailedSendExpiryDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendExpiryDigest)
}
