// Package analytics contiene los casos de uso de estadísticas: panel de
// administración, ventas por categoría y agregados por usuario.
package analytics

import (
	"context"
	"fmt"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// StatsUseCase estadísticas sobre pagos y catálogo.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type StatsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(repo repository.AnalyticsRepository) *StatsUseCase {
	return &StatsUseCase{repo: repo}
}

// AdminStats devuelve los totales globales del panel: usuarios, platos,
// pedidos e ingresos. Con el store vacío todos los valores son cero.
func (uc *StatsUseCase) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	totals, err := uc.repo.DashboardTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: totales del panel: %w", err)
	}
	return &dto.AdminStatsResponse{
		Users:     totals.Users,
		MenuItems: totals.MenuItems,
		Orders:    totals.Orders,
		Revenue:   totals.Revenue,
	}, nil
}

// OrderStats devuelve las ventas por categoría del menú. Cada plato comprado
// cuenta una vez por ocurrencia; las categorías sin ventas no aparecen.
func (uc *StatsUseCase) OrderStats(ctx context.Context) ([]dto.CategoryStatsResponse, error) {
	rows, err := uc.repo.OrderStatsByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats: ventas por categoría: %w", err)
	}
	out := make([]dto.CategoryStatsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.CategoryStatsResponse{
			Category:     r.Category,
			Quantity:     r.Quantity,
			TotalRevenue: r.TotalRevenue,
		})
	}
	return out, nil
}

// UserStats devuelve los agregados de compra del usuario indicado.
// Un usuario sin pagos obtiene ceros, no error.
func (uc *StatsUseCase) UserStats(ctx context.Context, email string) (*dto.UserStatsResponse, error) {
	totals, err := uc.repo.UserTotals(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("stats: agregados de usuario: %w", err)
	}
	return &dto.UserStatsResponse{
		Orders:         totals.Orders,
		TotalPayments:  totals.TotalPayments,
		TotalMenuItems: totals.TotalMenuItems,
	}, nil
}
