package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMenuItemRequest entrada para agregar un plato al catálogo.
type CreateMenuItemRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price" validate:"required"`
	Recipe   string          `json:"recipe"`
	Image    string          `json:"image"`
}

// UpdateMenuItemRequest actualización parcial de un plato (campos nil no se tocan).
type UpdateMenuItemRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Recipe   *string          `json:"recipe"`
	Image    *string          `json:"image"`
}

// MenuItemResponse salida de un plato del catálogo.
type MenuItemResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Recipe    string          `json:"recipe"`
	Image     string          `json:"image"`
	CreatedAt time.Time       `json:"createdAt"`
}
