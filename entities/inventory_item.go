package entities

import (
	"Culinary-Assistant/domain"
	"fmt"
	"strings"
	"time"
)

// ExpiringSoonDays is the warning window for IsExpiringSoon.
const ExpiringSoonDays = 3

// InventoryItem is a stock entry in the food inventory with day-granular
// expiration tracking. Expiration state is always derived from the current
// date, never stored.
type InventoryItem struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Item            `gorm:"embedded" json:"item"`
	ExpirationDate  time.Time `json:"expiration_date"`
	StorageLocation string    `json:"storage_location,omitempty"`
	Timestamp
}

func NewInventoryItem(name string, quantity float64, unit MeasurementUnit, expirationDate time.Time, storageLocation string) (*InventoryItem, error) {
	item, err := newItem(name, quantity, unit)
	if err != nil {
		return nil, err
	}
	return &InventoryItem{
		Item:            item,
		ExpirationDate:  dateOf(expirationDate),
		StorageLocation: strings.TrimSpace(storageLocation),
	}, nil
}

func (i *InventoryItem) SetName(name string) error {
	if err := i.setName(name); err != nil {
		return err
	}
	i.touch()
	return nil
}

func (i *InventoryItem) SetQuantity(quantity float64) error {
	if err := i.setQuantity(quantity); err != nil {
		return err
	}
	i.touch()
	return nil
}

func (i *InventoryItem) SetUnit(unit MeasurementUnit) {
	i.setUnit(unit)
	i.touch()
}

func (i *InventoryItem) SetExpirationDate(expirationDate time.Time) {
	i.ExpirationDate = dateOf(expirationDate)
	i.touch()
}

func (i *InventoryItem) SetStorageLocation(location string) {
	i.StorageLocation = strings.TrimSpace(location)
	i.touch()
}

// IsExpired reports whether the expiration date is strictly before today (UTC).
func (i *InventoryItem) IsExpired() bool {
	return dateOf(i.ExpirationDate).Before(dateOf(nowFunc()))
}

// IsExpiringSoon reports whether the item is not expired yet but expires
// within ExpiringSoonDays of today.
func (i *InventoryItem) IsExpiringSoon() bool {
	if i.IsExpired() {
		return false
	}
	return !dateOf(i.ExpirationDate).After(dateOf(nowFunc()).AddDate(0, 0, ExpiringSoonDays))
}

// DaysUntilExpiration is the day difference between the expiration date and
// today; negative once expired.
func (i *InventoryItem) DaysUntilExpiration() int {
	return int(dateOf(i.ExpirationDate).Sub(dateOf(nowFunc())).Hours() / 24)
}

// Use removes amount from stock. Fails without mutating when amount is not
// positive or exceeds the current quantity.
func (i *InventoryItem) Use(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount to use must be positive, got %g: %w", amount, domain.ErrValidation)
	}
	if amount > i.Quantity {
		return &domain.InsufficientStockError{Name: i.Name, Available: i.Quantity, Requested: amount}
	}
	return i.SetQuantity(i.Quantity - amount)
}

// Replenish adds amount to stock. Fails when amount is not positive.
func (i *InventoryItem) Replenish(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount to replenish must be positive, got %g: %w", amount, domain.ErrValidation)
	}
	return i.SetQuantity(i.Quantity + amount)
}
