package checkout

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
)

// La moneda es fija: el frontend cobra siempre en dólares.
const intentCurrency = "usd"

// PaymentIntentUseCase prepara un cobro con tarjeta en el procesador de
// pagos y devuelve el client secret que el frontend usa para confirmarlo.
type PaymentIntentUseCase struct {
	intents PaymentIntentCreator
}

// NewPaymentIntentUseCase construye el caso de uso.
func NewPaymentIntentUseCase(intents PaymentIntentCreator) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{intents: intents}
}

// Create convierte el precio a centavos (round half up) y crea el intent.
func (uc *PaymentIntentUseCase) Create(ctx context.Context, in dto.PaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if in.Price.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	cents := in.Price.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	secret, err := uc.intents.CreatePaymentIntent(ctx, cents, intentCurrency)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentIntentResponse{ClientSecret: secret}, nil
}
