// Package checkout implementa la finalización de un pedido: persistir el
// pago, vaciar del carrito los items comprados y despachar el recibo.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
	"github.com/dishdash/dishdash-api/pkg/logger"
)

// receiptQueue contrato mínimo para encolar el recibo; lo implementa
// *ReceiptWorker y un fake en tests.
type receiptQueue interface {
	Enqueue(r Receipt)
}

// FinalizeOrderUseCase orquesta la secuencia de cierre de un pedido:
//
//  1. Persistir el Payment tal como llegó (con ambas listas de ids).
//  2. Borrar en bloque los carritos consumidos (idempotente para ids ausentes).
//  3. Encolar el correo de confirmación (best-effort, en segundo plano).
//
// Los dos writes no van en una transacción: si el proceso cae entre 1 y 2,
// el pago queda registrado y los carritos sin borrar (limitación documentada;
// no hay compensación).
type FinalizeOrderUseCase struct {
	paymentRepo repository.PaymentRepository
	cartRepo    repository.CartRepository
	receipts    receiptQueue
	log         *logger.Logger
}

// NewFinalizeOrderUseCase construye el caso de uso.
func NewFinalizeOrderUseCase(
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
	receipts receiptQueue,
	log *logger.Logger,
) *FinalizeOrderUseCase {
	return &FinalizeOrderUseCase{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		receipts:    receipts,
		log:         log,
	}
}

// Execute finaliza el pedido. El insert del pago debe completarse antes de
// cualquier limpieza; si falla, aborta todo el flujo. Un fallo en el borrado
// del carrito se reporta en el resultado pero no deshace el insert.
func (uc *FinalizeOrderUseCase) Execute(ctx context.Context, in dto.CreatePaymentRequest) (*dto.FinalizeResultResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		Email:         in.Email,
		Name:          in.Name,
		TransactionID: in.TransactionID,
		Price:         in.Price,
		CartIDs:       in.CartIDs,
		MenuItemIDs:   in.MenuItemIDs,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, fmt.Errorf("persistir pago: %w", err)
	}

	result := &dto.FinalizeResultResponse{InsertedID: payment.ID}

	deleted, err := uc.cartRepo.DeleteByIDs(in.CartIDs)
	if err != nil {
		// El pago ya quedó registrado; se reporta el fallo sin compensar.
		uc.log.Error().Err(err).
			Str("payment_id", payment.ID).
			Msg("borrado del carrito falló tras registrar el pago")
		result.CleanupError = err.Error()
	} else {
		result.DeletedCount = deleted
	}

	uc.receipts.Enqueue(Receipt{
		Email:         payment.Email,
		Name:          payment.Name,
		TransactionID: payment.TransactionID,
	})

	return result, nil
}
