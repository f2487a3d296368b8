package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
}

// NewCartRepository construye el adaptador de persistencia para carritos.
func NewCartRepository(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// Create persiste una entrada de carrito.
func (r *CartRepo) Create(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, email, menu_item_id, name, image, price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Email, item.MenuItemID, item.Name, item.Image, item.Price, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByEmail devuelve el carrito del usuario.
func (r *CartRepo) ListByEmail(email string) ([]*entity.CartItem, error) {
	query := `
		SELECT id, email, menu_item_id, name, image, price, created_at
		FROM cart_items WHERE email = $1 ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, email)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.Email, &it.MenuItemID, &it.Name, &it.Image, &it.Price, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina una entrada de carrito por ID.
func (r *CartRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// DeleteByIDs borra en bloque las entradas indicadas. Los ids que no existen
// simplemente no afectan filas; repetir la operación es inocuo.
func (r *CartRepo) DeleteByIDs(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM cart_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete cart items: %w", err)
	}
	return tag.RowsAffected(), nil
}
