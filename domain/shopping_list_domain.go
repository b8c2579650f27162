package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessCreateShoppingList  = "shopping list created successfully"
	MessageSuccessUpdateShoppingList  = "shopping list updated successfully"
	MessageSuccessDeleteShoppingList  = "shopping list deleted successfully"
	MessageSuccessGetShoppingLists    = "shopping lists retrieved successfully"
	MessageSuccessGetShoppingList     = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem     = "shopping item added successfully"
	MessageSuccessRemoveShoppingItem  = "shopping item removed successfully"
	MessageSuccessUpdateShoppingItem  = "shopping item updated successfully"
	MessageSuccessMarkItemPurchased   = "shopping item marked as purchased"
	MessageSuccessMarkItemUnpurchased = "shopping item marked as not purchased"
	MessageSuccessCompleteList        = "shopping list completed successfully"
	MessageSuccessReopenList          = "shopping list reopened successfully"
	MessageSuccessClearPurchased      = "purchased items cleared successfully"

	MessageFailedCreateShoppingList  = "failed to create shopping list"
	MessageFailedUpdateShoppingList  = "failed to update shopping list"
	MessageFailedDeleteShoppingList  = "failed to delete shopping list"
	MessageFailedGetShoppingLists    = "failed to retrieve shopping lists"
	MessageFailedGetShoppingList     = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem     = "failed to add shopping item"
	MessageFailedRemoveShoppingItem  = "failed to remove shopping item"
	MessageFailedUpdateShoppingItem  = "failed to update shopping item"
	MessageFailedMarkItemPurchased   = "failed to mark shopping item as purchased"
	MessageFailedMarkItemUnpurchased = "failed to mark shopping item as not purchased"
	MessageFailedCompleteList        = "failed to complete shopping list"
	MessageFailedReopenList          = "failed to reopen shopping list"
	MessageFailedClearPurchased      = "failed to clear purchased items"

	ErrShoppingListNotFound = fmt.Errorf("shopping list %w", ErrNotFound)
	ErrShoppingItemNotFound = fmt.Errorf("shopping item %w", ErrNotFound)
)

type (
	CreateShoppingListRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	UpdateShoppingListRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
	}

	AddShoppingItemRequest struct {
		Name           string  `json:"name" validate:"required"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required,oneof=Piece Gram Kilogram Milliliter Liter Tablespoon Teaspoon Package Cup"`
		EstimatedPrice string  `json:"estimated_price" validate:"omitempty"`
		PreferredStore string  `json:"preferred_store" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
	}

	UpdateShoppingItemRequest struct {
		Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
		EstimatedPrice string  `json:"estimated_price" validate:"omitempty"`
		PreferredStore string  `json:"preferred_store" validate:"omitempty"`
		Notes          string  `json:"notes" validate:"omitempty"`
	}

	ShoppingItemResponse struct {
		ID             uint             `json:"id"`
		Name           string           `json:"name"`
		Quantity       float64          `json:"quantity"`
		Unit           string           `json:"unit"`
		IsPurchased    bool             `json:"is_purchased"`
		PurchasedAt    *time.Time       `json:"purchased_at,omitempty"`
		EstimatedPrice *decimal.Decimal `json:"estimated_price,omitempty"`
		PreferredStore string           `json:"preferred_store,omitempty"`
		Notes          string           `json:"notes,omitempty"`
	}

	ShoppingListResponse struct {
		ID                   uint                   `json:"id"`
		Name                 string                 `json:"name"`
		Description          string                 `json:"description,omitempty"`
		IsCompleted          bool                   `json:"is_completed"`
		CompletedAt          *time.Time             `json:"completed_at,omitempty"`
		TotalItems           int                    `json:"total_items"`
		PurchasedItems       int                    `json:"purchased_items"`
		TotalEstimatedPrice  decimal.Decimal        `json:"total_estimated_price"`
		CompletionPercentage float64                `json:"completion_percentage"`
		CreatedAt            time.Time              `json:"created_at"`
		Items                []ShoppingItemResponse `json:"items"`
	}

	ShoppingListSummaryResponse struct {
		ID                   uint       `json:"id"`
		Name                 string     `json:"name"`
		IsCompleted          bool       `json:"is_completed"`
		CompletedAt          *time.Time `json:"completed_at,omitempty"`
		TotalItems           int        `json:"total_items"`
		PurchasedItems       int        `json:"purchased_items"`
		CompletionPercentage float64    `json:"completion_percentage"`
		CreatedAt            time.Time  `json:"created_at"`
	}
)
