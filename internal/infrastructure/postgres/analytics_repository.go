package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para las estadísticas del panel
// y los agregados por usuario.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// DashboardTotals devuelve los totales globales del panel de administración.
// Los conteos salen de pg_class.reltuples: son estimaciones del planner, no
// COUNT(*) exactos (reltuples puede ser -1 en tablas nunca analizadas, de ahí
// el GREATEST). El ingreso sí es la suma exacta de price sobre payments, con
// COALESCE para devolver cero si no hay pagos.
func (r *AnalyticsRepo) DashboardTotals(ctx context.Context) (*repository.DashboardTotals, error) {
	const countsQuery = `
	SELECT
	    COALESCE(MAX(CASE WHEN relname = 'users'      THEN GREATEST(reltuples, 0)::BIGINT END), 0) AS users,
	    COALESCE(MAX(CASE WHEN relname = 'menu_items' THEN GREATEST(reltuples, 0)::BIGINT END), 0) AS menu_items,
	    COALESCE(MAX(CASE WHEN relname = 'payments'   THEN GREATEST(reltuples, 0)::BIGINT END), 0) AS orders
	FROM pg_class
	WHERE relname IN ('users', 'menu_items', 'payments')`

	var totals repository.DashboardTotals
	err := r.pool.QueryRow(ctx, countsQuery).Scan(&totals.Users, &totals.MenuItems, &totals.Orders)
	if err != nil {
		return nil, fmt.Errorf("analytics.DashboardTotals counts: %w", err)
	}

	const revenueQuery = `SELECT COALESCE(SUM(price), 0) FROM payments`
	if err := r.pool.QueryRow(ctx, revenueQuery).Scan(&totals.Revenue); err != nil {
		return nil, fmt.Errorf("analytics.DashboardTotals revenue: %w", err)
	}
	return &totals, nil
}

// OrderStatsByCategory expande la lista menu_item_ids de cada pago (una fila
// por plato comprado, duplicados incluidos), la une con el catálogo y agrupa
// por categoría. Quantity cuenta los pares pago-plato y TotalRevenue suma el
// precio de catálogo del plato, no el price del pago. Ids que ya no existen
// en el catálogo se pierden en el JOIN; categorías sin ventas no aparecen.
func (r *AnalyticsRepo) OrderStatsByCategory(ctx context.Context) ([]repository.CategoryOrderStats, error) {
	const query = `
	SELECT
	    m.category,
	    COUNT(*)      AS quantity,
	    SUM(m.price)  AS total_revenue
	FROM payments p
	CROSS JOIN LATERAL unnest(p.menu_item_ids) AS item_id
	JOIN menu_items m ON m.id = item_id
	GROUP BY m.category
	ORDER BY total_revenue DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.OrderStatsByCategory: %w", err)
	}
	defer rows.Close()

	var results []repository.CategoryOrderStats
	for rows.Next() {
		var row repository.CategoryOrderStats
		if err := rows.Scan(&row.Category, &row.Quantity, &row.TotalRevenue); err != nil {
			return nil, fmt.Errorf("analytics.OrderStatsByCategory scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// UserTotals agrega los pagos de un usuario: cuántos pedidos hizo, cuánto ha
// pagado en total y cuántos platos compró (largo de menu_item_ids, con
// duplicados). Un usuario sin pagos obtiene ceros por los COALESCE.
func (r *AnalyticsRepo) UserTotals(ctx context.Context, email string) (*repository.UserTotals, error) {
	const query = `
	SELECT
	    COUNT(*)                                        AS orders,
	    COALESCE(SUM(price), 0)                         AS total_payments,
	    COALESCE(SUM(cardinality(menu_item_ids)), 0)    AS total_menu_items
	FROM payments
	WHERE email = $1`

	var totals repository.UserTotals
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&totals.Orders, &totals.TotalPayments, &totals.TotalMenuItems,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.UserTotals: %w", err)
	}
	return &totals, nil
}
