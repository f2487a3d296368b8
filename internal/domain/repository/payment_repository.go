package repository

import "github.com/dishdash/dishdash-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para los pagos.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	ListByEmail(email string) ([]*entity.Payment, error)
	List() ([]*entity.Payment, error)
	// UpdateStatus actualiza solo el status del pago; el resto del documento
	// es inmutable después de creado.
	UpdateStatus(id, status string) error
}
