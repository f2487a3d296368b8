package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishdash/dishdash-api/internal/application/checkout"
	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain"
)

// fakeIntentCreator captura el monto y moneda solicitados.
type fakeIntentCreator struct {
	gotCents    int64
	gotCurrency string
	err         error
}

func (f *fakeIntentCreator) CreatePaymentIntent(_ context.Context, amountCents int64, currency string) (string, error) {
	f.gotCents = amountCents
	f.gotCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_secret_xyz", nil
}

// El precio en dólares se convierte a centavos antes de llamar al procesador.
func TestPaymentIntent_ConvierteACentavos(t *testing.T) {
	cases := []struct {
		price string
		cents int64
	}{
		{"10", 1000},
		{"12.50", 1250},
		{"0.99", 99},
		{"19.999", 2000}, // round half up
	}
	for _, tc := range cases {
		creator := &fakeIntentCreator{}
		uc := checkout.NewPaymentIntentUseCase(creator)

		out, err := uc.Create(context.Background(), dto.PaymentIntentRequest{
			Price: decimal.RequireFromString(tc.price),
		})
		require.NoError(t, err, "precio %s", tc.price)

		assert.Equal(t, tc.cents, creator.gotCents, "precio %s", tc.price)
		assert.Equal(t, "usd", creator.gotCurrency)
		assert.Equal(t, "pi_secret_xyz", out.ClientSecret)
	}
}

// Precios cero o negativos se rechazan sin tocar el procesador.
func TestPaymentIntent_RechazaPrecioNoPositivo(t *testing.T) {
	for _, price := range []string{"0", "-5"} {
		creator := &fakeIntentCreator{}
		uc := checkout.NewPaymentIntentUseCase(creator)

		_, err := uc.Create(context.Background(), dto.PaymentIntentRequest{
			Price: decimal.RequireFromString(price),
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput, "precio %s", price)
		assert.Zero(t, creator.gotCents, "el procesador no debe ser llamado")
	}
}

// Un fallo del procesador se propaga sin envolver en un secret vacío.
func TestPaymentIntent_PropagaErrorDelProcesador(t *testing.T) {
	creator := &fakeIntentCreator{err: errors.New("stripe: HTTP 402")}
	uc := checkout.NewPaymentIntentUseCase(creator)

	out, err := uc.Create(context.Background(), dto.PaymentIntentRequest{
		Price: decimal.NewFromInt(10),
	})
	require.Error(t, err)
	assert.Nil(t, out)
}
