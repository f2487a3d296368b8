package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
// cart_ids y menu_item_ids se guardan como TEXT[] en el documento del pago.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create persiste un pago nuevo con ambas listas de ids tal como llegaron.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, email, name, transaction_id, price, cart_ids, menu_item_ids, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		payment.ID, payment.Email, payment.Name, payment.TransactionID, payment.Price,
		payment.CartIDs, payment.MenuItemIDs, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ListByEmail devuelve los pagos del usuario, más recientes primero.
func (r *PaymentRepo) ListByEmail(email string) ([]*entity.Payment, error) {
	query := `
		SELECT id, email, name, transaction_id, price, cart_ids, menu_item_ids, status, created_at
		FROM payments WHERE email = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("list payments by email: %w", err)
	}
	return scanPayments(rows)
}

// List devuelve todos los pagos, más recientes primero.
func (r *PaymentRepo) List() ([]*entity.Payment, error) {
	query := `
		SELECT id, email, name, transaction_id, price, cart_ids, menu_item_ids, status, created_at
		FROM payments ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return scanPayments(rows)
}

// UpdateStatus actualiza solo el estado del pago.
func (r *PaymentRepo) UpdateStatus(id, status string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE payments SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return nil
}

func scanPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.Name, &p.TransactionID, &p.Price,
			&p.CartIDs, &p.MenuItemIDs, &p.Status, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
