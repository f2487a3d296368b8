package usecase

import (
	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// PaymentUseCase consultas de historial y administración de pagos.
// La creación de pagos vive en el flujo de checkout, no aquí.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// HistoryByEmail devuelve los pagos del usuario indicado.
func (uc *PaymentUseCase) HistoryByEmail(email string) ([]dto.PaymentResponse, error) {
	payments, err := uc.repo.ListByEmail(email)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListAll devuelve todos los pagos (solo admin).
func (uc *PaymentUseCase) ListAll() ([]dto.PaymentResponse, error) {
	payments, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// UpdateStatus cambia el estado de un pago (solo admin).
func (uc *PaymentUseCase) UpdateStatus(id string, in dto.UpdatePaymentStatusRequest) error {
	if in.Status == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.UpdateStatus(id, in.Status)
}

func toPaymentResponses(payments []*entity.Payment) []dto.PaymentResponse {
	out := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, dto.PaymentResponse{
			ID:            p.ID,
			Email:         p.Email,
			Name:          p.Name,
			TransactionID: p.TransactionID,
			Price:         p.Price,
			CartIDs:       p.CartIDs,
			MenuItemIDs:   p.MenuItemIDs,
			Status:        p.Status,
			CreatedAt:     p.CreatedAt,
		})
	}
	return out
}
