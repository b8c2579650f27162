package entities

import (
	"Culinary-Assistant/domain"
	"fmt"
	"strings"
)

// Category is a label recipes reference through RecipeCategory associations.
// Name uniqueness across categories is enforced by the category service.
type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	Description string `json:"description,omitempty"`
	IconName    string `json:"icon_name,omitempty"`
	Timestamp
}

func NewCategory(name, description, iconName string) (*Category, error) {
	c := &Category{
		Description: strings.TrimSpace(description),
		IconName:    iconName,
	}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name must not be empty: %w", domain.ErrValidation)
	}
	c.Name = name
	c.touch()
	return nil
}

func (c *Category) SetDescription(description string) {
	c.Description = strings.TrimSpace(description)
	c.touch()
}

func (c *Category) SetIconName(iconName string) {
	c.IconName = iconName
	c.touch()
}
