package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCartItemRequest entrada para agregar un plato al carrito.
// Name, Image y Price llegan como snapshot del plato elegido.
type CreateCartItemRequest struct {
	Email      string          `json:"email" validate:"required,email"`
	MenuItemID string          `json:"menuItemId" validate:"required"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price"`
}

// CartItemResponse salida de una entrada de carrito.
type CartItemResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  time.Time       `json:"createdAt"`
}
