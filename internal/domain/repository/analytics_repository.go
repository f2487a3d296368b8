package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardTotals totales globales del panel de administración.
// Los conteos son estimaciones rápidas del store, no COUNT(*) exactos.
type DashboardTotals struct {
	Users     int64
	MenuItems int64
	Orders    int64
	Revenue   decimal.Decimal // suma de price sobre todos los pagos; 0 si no hay
}

// CategoryOrderStats agregado de ventas por categoría del menú.
// Quantity cuenta cada ocurrencia de plato comprado (no por pago) y
// TotalRevenue suma el precio de catálogo del plato, no el price del pago.
type CategoryOrderStats struct {
	Category     string
	Quantity     int64
	TotalRevenue decimal.Decimal
}

// UserTotals agregados de compra de un usuario.
type UserTotals struct {
	Orders         int64           // número de pagos del usuario
	TotalPayments  decimal.Decimal // suma de price de sus pagos
	TotalMenuItems int64           // suma de platos comprados (duplicados cuentan)
}

// AnalyticsRepository consultas de solo lectura para las estadísticas.
// Todas deben tolerar colecciones vacías devolviendo ceros, nunca error.
type AnalyticsRepository interface {
	DashboardTotals(ctx context.Context) (*DashboardTotals, error)
	OrderStatsByCategory(ctx context.Context) ([]CategoryOrderStats, error)
	UserTotals(ctx context.Context, email string) (*UserTotals, error)
}
