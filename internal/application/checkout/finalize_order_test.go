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
	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

// fakePaymentRepo guarda los pagos en memoria; failCreate simula un store caído.
type fakePaymentRepo struct {
	created    []*entity.Payment
	failCreate bool
}

func (f *fakePaymentRepo) Create(p *entity.Payment) error {
	if f.failCreate {
		return errors.New("store no disponible")
	}
	f.created = append(f.created, p)
	return nil
}

func (f *fakePaymentRepo) ListByEmail(string) ([]*entity.Payment, error) { return nil, nil }
func (f *fakePaymentRepo) List() ([]*entity.Payment, error)              { return nil, nil }
func (f *fakePaymentRepo) UpdateStatus(string, string) error             { return nil }

// fakeCartRepo carrito en memoria indexado por id; failDelete simula el fallo
// del borrado en bloque.
type fakeCartRepo struct {
	items      map[string]bool
	failDelete bool
	deleteArgs []string
}

func (f *fakeCartRepo) Create(*entity.CartItem) error                    { return nil }
func (f *fakeCartRepo) ListByEmail(string) ([]*entity.CartItem, error)   { return nil, nil }
func (f *fakeCartRepo) Delete(string) error                              { return nil }

func (f *fakeCartRepo) DeleteByIDs(ids []string) (int64, error) {
	f.deleteArgs = ids
	if f.failDelete {
		return 0, errors.New("store no disponible")
	}
	var n int64
	for _, id := range ids {
		if f.items[id] {
			delete(f.items, id)
			n++
		}
	}
	return n, nil
}

// fakeReceipts registra los recibos encolados.
type fakeReceipts struct {
	enqueued []checkout.Receipt
}

func (f *fakeReceipts) Enqueue(r checkout.Receipt) {
	f.enqueued = append(f.enqueued, r)
}

func testRequest() dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		Email:         "cliente@dishdash.app",
		Name:          "Cliente Uno",
		TransactionID: "pi_123",
		Price:         decimal.NewFromInt(25),
		CartIDs:       []string{"cart-x", "cart-y"},
		MenuItemIDs:   []string{"menu-a", "menu-b"},
	}
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests FinalizeOrder
// ──────────────────────────────────────────────────────────────────────────────

// Caso feliz: un pago insertado, los dos carritos borrados, recibo encolado.
func TestFinalizeOrder_InsertaPagoYVaciaCarrito(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{items: map[string]bool{"cart-x": true, "cart-y": true}}
	receipts := &fakeReceipts{}
	uc := checkout.NewFinalizeOrderUseCase(payments, carts, receipts, testLogger())

	out, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.Len(t, payments.created, 1, "debe insertarse exactamente un pago")
	assert.Equal(t, out.InsertedID, payments.created[0].ID)
	assert.Equal(t, int64(2), out.DeletedCount)
	assert.Empty(t, carts.items, "ambos carritos deben quedar borrados")
	assert.Empty(t, out.CleanupError)

	require.Len(t, receipts.enqueued, 1)
	assert.Equal(t, "cliente@dishdash.app", receipts.enqueued[0].Email)
	assert.Equal(t, "pi_123", receipts.enqueued[0].TransactionID)
}

// Un id de carrito ya borrado no es error: el delete es idempotente.
func TestFinalizeOrder_IdDeCarritoAusente_NoEsError(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{items: map[string]bool{"cart-y": true}} // cart-x ya no existe
	uc := checkout.NewFinalizeOrderUseCase(payments, carts, &fakeReceipts{}, testLogger())

	out, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), out.DeletedCount)
	require.Len(t, payments.created, 1)
}

// El pago persiste tal cual: ambas listas de ids y el precio sin tocar.
func TestFinalizeOrder_PersisteElPagoVerbatim(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{items: map[string]bool{}}
	uc := checkout.NewFinalizeOrderUseCase(payments, carts, &fakeReceipts{}, testLogger())

	in := testRequest()
	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	p := payments.created[0]
	assert.Equal(t, in.CartIDs, p.CartIDs)
	assert.Equal(t, in.MenuItemIDs, p.MenuItemIDs)
	assert.True(t, in.Price.Equal(p.Price))
	assert.Equal(t, entity.PaymentStatusPending, p.Status,
		"sin status explícito el pago queda pending")
}

// Si el insert del pago falla, aborta todo: ni borrado ni recibo.
func TestFinalizeOrder_FalloDelInsert_AbortaElFlujo(t *testing.T) {
	payments := &fakePaymentRepo{failCreate: true}
	carts := &fakeCartRepo{items: map[string]bool{"cart-x": true}}
	receipts := &fakeReceipts{}
	uc := checkout.NewFinalizeOrderUseCase(payments, carts, receipts, testLogger())

	_, err := uc.Execute(context.Background(), testRequest())
	require.Error(t, err)

	assert.Nil(t, carts.deleteArgs, "no debe intentarse el borrado del carrito")
	assert.Empty(t, receipts.enqueued, "no debe encolarse recibo")
	assert.True(t, carts.items["cart-x"], "el carrito debe quedar intacto")
}

// Si el borrado falla, el pago ya registrado no se compensa: el fallo se
// reporta en el resultado y el recibo sale igual.
func TestFinalizeOrder_FalloDelBorrado_NoCompensaElPago(t *testing.T) {
	payments := &fakePaymentRepo{}
	carts := &fakeCartRepo{items: map[string]bool{"cart-x": true}, failDelete: true}
	receipts := &fakeReceipts{}
	uc := checkout.NewFinalizeOrderUseCase(payments, carts, receipts, testLogger())

	out, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err, "el fallo del borrado no falla la operación")

	require.Len(t, payments.created, 1, "el pago queda registrado")
	assert.NotEmpty(t, out.CleanupError)
	assert.Equal(t, int64(0), out.DeletedCount)
	assert.Len(t, receipts.enqueued, 1)
}
