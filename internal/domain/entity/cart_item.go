package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem es una selección pendiente de compra: un plato del menú agregado
// por un usuario. Name, Image y Price son un snapshot del MenuItem al momento
// de agregarlo, para que el carrito no cambie si el catálogo se edita después.
type CartItem struct {
	ID         string
	Email      string // dueño del carrito
	MenuItemID string
	Name       string
	Image      string
	Price      decimal.Decimal
	CreatedAt  time.Time
}
