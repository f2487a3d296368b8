package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dishdash/dishdash-api/internal/domain/entity"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

var _ repository.MenuRepository = (*MenuRepo)(nil)

// MenuRepo implementación del puerto MenuRepository sobre PostgreSQL.
type MenuRepo struct {
	pool *pgxpool.Pool
}

// NewMenuRepository construye el adaptador de persistencia para el catálogo.
func NewMenuRepository(pool *pgxpool.Pool) *MenuRepo {
	return &MenuRepo{pool: pool}
}

// Create persiste un plato nuevo.
func (r *MenuRepo) Create(item *entity.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, category, price, recipe, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Price, item.Recipe, item.Image, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// GetByID obtiene un plato por ID. Devuelve nil si no existe.
func (r *MenuRepo) GetByID(id string) (*entity.MenuItem, error) {
	query := `
		SELECT id, name, category, price, recipe, image, created_at
		FROM menu_items WHERE id = $1`
	var it entity.MenuItem
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.Name, &it.Category, &it.Price, &it.Recipe, &it.Image, &it.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get menu item: %w", err)
	}
	return &it, nil
}

// List devuelve el catálogo completo.
func (r *MenuRepo) List() ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, category, price, recipe, image, created_at
		FROM menu_items ORDER BY category, name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MenuItem
	for rows.Next() {
		var it entity.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Price, &it.Recipe, &it.Image, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update actualiza un plato.
func (r *MenuRepo) Update(item *entity.MenuItem) error {
	query := `
		UPDATE menu_items SET name = $2, category = $3, price = $4, recipe = $5, image = $6
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.Price, item.Recipe, item.Image,
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	return nil
}

// Delete elimina un plato por ID.
func (r *MenuRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}
