package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessAddInventoryItem    = "inventory item added successfully"
	MessageSuccessUpdateInventoryItem = "inventory item updated successfully"
	MessageSuccessDeleteInventoryItem = "inventory item deleted successfully"
	MessageSuccessGetInventoryItems   = "inventory items retrieved successfully"
	MessageSuccessUseInventoryItem    = "inventory item used successfully"
	MessageSuccessReplenishItem       = "inventory item replenished successfully"
	MessageSuccessSendExpiryDigest    = "expiry digest sent successfully"

	MessageFailedAddInventoryItem    = "failed to add inventory item"
	MessageFailedUpdateInventoryItem = "failed to update inventory item"
	MessageFailedDeleteInventoryItem = "failed to delete inventory item"
	MessageFailedGetInventoryItems   = "failed to retrieve inventory items"
	MessageFailedUseInventoryItem    = "failed to use inventory item"
	MessageFailedReplenishItem       = "failed to replenish inventory item"
	MessageFailedSendExpiryDigest    = "failed to send expiry digest"

	ErrInventoryItemNotFound = fmt.Errorf("inventory item %w", ErrNotFound)
	ErrInvalidExpirationDate = fmt.Errorf("invalid expiration date: %w", ErrValidation)
)

type (
	AddInventoryItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"gte=0"`
		Unit            string  `json:"unit" validate:"required,oneof=Piece Gram Kilogram Milliliter Liter Tablespoon Teaspoon Package Cup"`
		ExpirationDate  string  `json:"expiration_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty"`
	}

	UpdateInventoryItemRequest struct {
		Name            string  `json:"name" validate:"required"`
		Quantity        float64 `json:"quantity" validate:"gte=0"`
		Unit            string  `json:"unit" validate:"required,oneof=Piece Gram Kilogram Milliliter Liter Tablespoon Teaspoon Package Cup"`
		ExpirationDate  string  `json:"expiration_date" validate:"required"`
		StorageLocation string  `json:"storage_location" validate:"omitempty"`
	}

	StockAmountRequest struct {
		Amount float64 `json:"amount" validate:"required,gt=0"`
	}

	SendExpiryDigestRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	InventoryItemResponse struct {
		ID                  uint      `json:"id"`
		Name                string    `json:"name"`
		Quantity            float64   `json:"quantity"`
		Unit                string    `json:"unit"`
		ExpirationDate      time.Time `json:"expiration_date"`
		StorageLocation     string    `json:"storage_location,omitempty"`
		IsExpired           bool      `json:"is_expired"`
		IsExpiringSoon      bool      `json:"is_expiring_soon"`
		DaysUntilExpiration int       `json:"days_until_expiration"`
		CreatedAt           time.Time `json:"created_at"`
	}
)
