package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentIntentRequest monto a cobrar con tarjeta.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

// PaymentIntentResponse client secret para confirmar el cobro en el frontend.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreatePaymentRequest envío de un pago completado: se persiste tal cual,
// incluidas las dos listas de ids.
type CreatePaymentRequest struct {
	Email         string          `json:"email" validate:"required,email"`
	Name          string          `json:"name"`
	TransactionID string          `json:"transactionId" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	CartIDs       []string        `json:"cartIds"`
	MenuItemIDs   []string        `json:"menuItemIds"`
	Status        string          `json:"status"`
}

// FinalizeResultResponse resultado combinado de la finalización del pedido:
// el insert del pago y la limpieza del carrito. CleanupError solo aparece si
// el pago quedó registrado pero el borrado del carrito falló (no se compensa).
type FinalizeResultResponse struct {
	InsertedID   string `json:"insertedId"`
	DeletedCount int64  `json:"deletedCount"`
	CleanupError string `json:"cleanupError,omitempty"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	Name          string          `json:"name"`
	TransactionID string          `json:"transactionId"`
	Price         decimal.Decimal `json:"price"`
	CartIDs       []string        `json:"cartIds"`
	MenuItemIDs   []string        `json:"menuItemIds"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// UpdatePaymentStatusRequest nuevo estado de un pago (solo admin).
type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,min=1,max=50"`
}
