package entities

import (
	"Culinary-Assistant/domain"
	"fmt"
	"strings"
)

// Item is the stock value object shared by InventoryItem and ShoppingItem:
// a trimmed non-empty name, a non-negative quantity and a measurement unit.
// The setters are unexported; the owning entity wraps them and bumps its own
// update timestamp.
type Item struct {
	Name     string          `json:"name"`
	Quantity float64         `json:"quantity"`
	Unit     MeasurementUnit `json:"unit"`
}

func newItem(name string, quantity float64, unit MeasurementUnit) (Item, error) {
	var it Item
	if err := it.setName(name); err != nil {
		return Item{}, err
	}
	if err := it.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	it.Unit = unit
	return it, nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("item name must not be empty: %w", domain.ErrValidation)
	}
	i.Name = name
	return nil
}

func (i *Item) setQuantity(quantity float64) error {
	if quantity < 0 {
		return fmt.Errorf("quantity must not be negative, got %g: %w", quantity, domain.ErrValidation)
	}
	i.Quantity = quantity
	return nil
}

func (i *Item) setUnit(unit MeasurementUnit) {
	i.Unit = unit
}

// nameEquals compares item names case-insensitively.
func (i *Item) nameEquals(name string) bool {
	return strings.EqualFold(i.Name, strings.TrimSpace(name))
}
