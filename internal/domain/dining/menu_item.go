package dining

import (
	"strings"

	"github.com/dinehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemIngredient maps a menu item to the inventory stock it consumes.
// Quantity is the stock consumed per single unit of the menu item.
type MenuItemIngredient struct {
	shared.BaseEntity
	MenuItemID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	InventoryItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (MenuItemIngredient) TableName() string {
	return "menu_item_ingredients"
}

// MenuItem is a sellable dish. Its section routes order items to a kitchen
// screen; its ingredients drive stock consumption on order fulfillment.
type MenuItem struct {
	shared.BaseAggregateRoot
	Title       string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	Price       decimal.Decimal      `gorm:"type:decimal(18,4);not null"`
	SectionID   *uuid.UUID           `gorm:"type:uuid;index"`
	Available   bool                 `gorm:"not null"`
	Ingredients []MenuItemIngredient `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE"`
	CreatedBy   *uuid.UUID           `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (MenuItem) TableName() string {
	return "menu_items"
}

// IngredientLine is the input for one ingredient mapping.
type IngredientLine struct {
	InventoryItemID uuid.UUID
	Quantity        decimal.Decimal
}

// NewMenuItem creates a new menu item
func NewMenuItem(title string, price decimal.Decimal, sectionID *uuid.UUID, ingredients []IngredientLine, createdBy *uuid.UUID) (*MenuItem, error) {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return nil, shared.NewDomainError("INVALID_MENU_TITLE", "Menu item title cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	item := &MenuItem{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             title,
		Price:             price,
		SectionID:         sectionID,
		Available:         true,
		CreatedBy:         createdBy,
	}

	if err := item.setIngredients(ingredients); err != nil {
		return nil, err
	}

	return item, nil
}

// Update replaces the menu item's details and ingredient mappings
func (m *MenuItem) Update(title string, price decimal.Decimal, sectionID *uuid.UUID, available bool, ingredients []IngredientLine) error {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return shared.NewDomainError("INVALID_MENU_TITLE", "Menu item title cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	if err := m.setIngredients(ingredients); err != nil {
		return err
	}

	m.Title = title
	m.Price = price
	m.SectionID = sectionID
	m.Available = available
	m.Touch()
	m.IncrementVersion()

	return nil
}

func (m *MenuItem) setIngredients(lines []IngredientLine) error {
	ingredients := make([]MenuItemIngredient, 0, len(lines))
	for _, line := range lines {
		if line.InventoryItemID == uuid.Nil {
			return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient inventory item ID is required")
		}
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.NewDomainError("INVALID_INGREDIENT", "Ingredient quantity must be positive")
		}
		ingredients = append(ingredients, MenuItemIngredient{
			BaseEntity:      shared.NewBaseEntity(),
			MenuItemID:      m.ID,
			InventoryItemID: line.InventoryItemID,
			Quantity:        line.Quantity,
		})
	}

	m.Ingredients = ingredients

	return nil
}
