package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Payment. El pago se crea como pending y un admin lo
// actualiza después (ej: al despachar el pedido).
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Payment es el registro durable de un pedido completado. CartIDs son los
// carritos consumidos por la compra (se eliminan al finalizar el pedido) y
// MenuItemIDs los platos comprados, con duplicados si se pidió más de una vez.
// Inmutable salvo el Status, que solo muta un admin.
type Payment struct {
	ID            string
	Email         string
	Name          string
	TransactionID string // id de la transacción en el procesador de pagos
	Price         decimal.Decimal
	CartIDs       []string
	MenuItemIDs   []string
	Status        string
	CreatedAt     time.Time
}
