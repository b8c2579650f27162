package entities

import (
	"Culinary-Assistant/domain"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ShoppingItem is one line of a shopping list. Prices are exact decimals,
// quantities share the Item arithmetic with InventoryItem.
type ShoppingItem struct {
	ID             uint `gorm:"primarykey" json:"id"`
	ShoppingListID uint `gorm:"index" json:"shopping_list_id"`
	Item           `gorm:"embedded" json:"item"`
	IsPurchased    bool             `json:"is_purchased"`
	PurchasedAt    *time.Time       `json:"purchased_at,omitempty"`
	EstimatedPrice *decimal.Decimal `gorm:"type:decimal(10,2)" json:"estimated_price,omitempty"`
	PreferredStore string           `json:"preferred_store,omitempty"`
	Notes          string           `json:"notes,omitempty"`
	Timestamp
}

func newShoppingItem(name string, quantity float64, unit MeasurementUnit, estimatedPrice *decimal.Decimal, preferredStore, notes string) (*ShoppingItem, error) {
	item, err := newItem(name, quantity, unit)
	if err != nil {
		return nil, err
	}
	si := &ShoppingItem{
		Item:           item,
		PreferredStore: strings.TrimSpace(preferredStore),
		Notes:          strings.TrimSpace(notes),
	}
	if err := si.SetEstimatedPrice(estimatedPrice); err != nil {
		return nil, err
	}
	return si, nil
}

func (s *ShoppingItem) SetName(name string) error {
	if err := s.setName(name); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *ShoppingItem) SetQuantity(quantity float64) error {
	if err := s.setQuantity(quantity); err != nil {
		return err
	}
	s.touch()
	return nil
}

func (s *ShoppingItem) SetUnit(unit MeasurementUnit) {
	s.setUnit(unit)
	s.touch()
}

func (s *ShoppingItem) SetEstimatedPrice(price *decimal.Decimal) error {
	if price != nil && price.IsNegative() {
		return fmt.Errorf("estimated price must not be negative, got %s: %w", price, domain.ErrValidation)
	}
	s.EstimatedPrice = price
	s.touch()
	return nil
}

func (s *ShoppingItem) SetPreferredStore(store string) {
	s.PreferredStore = strings.TrimSpace(store)
	s.touch()
}

func (s *ShoppingItem) SetNotes(notes string) {
	s.Notes = strings.TrimSpace(notes)
	s.touch()
}

// MarkAsPurchased records the purchase time once; already-purchased items are
// left untouched.
func (s *ShoppingItem) MarkAsPurchased() {
	if s.IsPurchased {
		return
	}
	now := nowFunc().UTC()
	s.IsPurchased = true
	s.PurchasedAt = &now
	s.touch()
}

func (s *ShoppingItem) MarkAsNotPurchased() {
	s.IsPurchased = false
	s.PurchasedAt = nil
	s.touch()
}

// ShoppingList is the aggregate root owning ShoppingItems. Completed lists are
// frozen: items can neither be added nor removed until the list is reopened.
type ShoppingList struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsCompleted bool   `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Items []*ShoppingItem `gorm:"foreignKey:ShoppingListID;constraint:OnDelete:CASCADE" json:"items"`
	Timestamp
}

func NewShoppingList(name, description string) (*ShoppingList, error) {
	l := &ShoppingList{Description: strings.TrimSpace(description)}
	if err := l.SetName(name); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *ShoppingList) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("shopping list name must not be empty: %w", domain.ErrValidation)
	}
	l.Name = name
	l.touch()
	return nil
}

func (l *ShoppingList) SetDescription(description string) {
	l.Description = strings.TrimSpace(description)
	l.touch()
}

func (l *ShoppingList) TotalItems() int {
	return len(l.Items)
}

func (l *ShoppingList) PurchasedItems() int {
	count := 0
	for _, item := range l.Items {
		if item.IsPurchased {
			count++
		}
	}
	return count
}

// TotalEstimatedPrice sums the priced items; unpriced items contribute zero.
func (l *ShoppingList) TotalEstimatedPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.Items {
		if item.EstimatedPrice != nil {
			total = total.Add(*item.EstimatedPrice)
		}
	}
	return total
}

func (l *ShoppingList) CompletionPercentage() float64 {
	if len(l.Items) == 0 {
		return 0
	}
	return float64(l.PurchasedItems()) / float64(l.TotalItems()) * 100
}

// AddItem merges into an existing unpurchased item with the same name
// (case-insensitive) by adding quantities; otherwise it appends a new item.
func (l *ShoppingList) AddItem(name string, quantity float64, unit MeasurementUnit, estimatedPrice *decimal.Decimal, preferredStore, notes string) (*ShoppingItem, error) {
	if l.IsCompleted {
		return nil, fmt.Errorf("cannot add items to completed shopping list %q: %w", l.Name, domain.ErrBusinessRule)
	}

	for _, existing := range l.Items {
		if existing.nameEquals(name) && !existing.IsPurchased {
			if err := existing.SetQuantity(existing.Quantity + quantity); err != nil {
				return nil, err
			}
			return existing, nil
		}
	}

	item, err := newShoppingItem(name, quantity, unit, estimatedPrice, preferredStore, notes)
	if err != nil {
		return nil, err
	}
	item.ShoppingListID = l.ID
	l.Items = append(l.Items, item)
	l.touch()
	return item, nil
}

func (l *ShoppingList) RemoveItem(itemID uint) error {
	if l.IsCompleted {
		return fmt.Errorf("cannot remove items from completed shopping list %q: %w", l.Name, domain.ErrBusinessRule)
	}
	for idx, item := range l.Items {
		if item.ID == itemID {
			l.Items = append(l.Items[:idx], l.Items[idx+1:]...)
			l.touch()
			return nil
		}
	}
	return fmt.Errorf("item with ID %d is not part of shopping list %q: %w", itemID, l.Name, domain.ErrBusinessRule)
}

// FindItem returns the owned item with the given id, or nil.
func (l *ShoppingList) FindItem(itemID uint) *ShoppingItem {
	for _, item := range l.Items {
		if item.ID == itemID {
			return item
		}
	}
	return nil
}

// MarkAsCompleted freezes the list; completing twice is a no-op.
func (l *ShoppingList) MarkAsCompleted() {
	if l.IsCompleted {
		return
	}
	now := nowFunc().UTC()
	l.IsCompleted = true
	l.CompletedAt = &now
	l.touch()
}

func (l *ShoppingList) Reopen() {
	l.IsCompleted = false
	l.CompletedAt = nil
	l.touch()
}

// ClearPurchasedItems drops every purchased item, regardless of whether the
// list itself is completed.
func (l *ShoppingList) ClearPurchasedItems() {
	kept := l.Items[:0]
	for _, item := range l.Items {
		if !item.IsPurchased {
			kept = append(kept, item)
		}
	}
	l.Items = kept
	l.touch()
}
