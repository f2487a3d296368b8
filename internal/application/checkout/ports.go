package checkout

import "context"

// Receipt datos del correo de confirmación de un pedido.
type Receipt struct {
	Email         string // destinatario
	Name          string // nombre del cliente para el saludo
	TransactionID string
}

// ReceiptSender puerto de salida para el envío del correo de confirmación.
// La implementación concreta usa SMTP; para tests se inyecta un fake.
type ReceiptSender interface {
	SendReceipt(ctx context.Context, r Receipt) error
}

// PaymentIntentCreator puerto de salida hacia el procesador de pagos.
// amountCents es el monto en centavos (unidad mínima de la moneda).
type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency string) (clientSecret string, err error)
}
