package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishdash/dishdash-api/internal/application/analytics"
	"github.com/dishdash/dishdash-api/internal/domain/repository"
)

// fakeAnalyticsRepo devuelve valores fijos; err fuerza el camino de error.
type fakeAnalyticsRepo struct {
	totals     *repository.DashboardTotals
	categories []repository.CategoryOrderStats
	userTotals *repository.UserTotals
	askedEmail string
	err        error
}

func (f *fakeAnalyticsRepo) DashboardTotals(context.Context) (*repository.DashboardTotals, error) {
	return f.totals, f.err
}

func (f *fakeAnalyticsRepo) OrderStatsByCategory(context.Context) ([]repository.CategoryOrderStats, error) {
	return f.categories, f.err
}

func (f *fakeAnalyticsRepo) UserTotals(_ context.Context, email string) (*repository.UserTotals, error) {
	f.askedEmail = email
	return f.userTotals, f.err
}

// Con el store vacío el panel devuelve ceros, no error.
func TestStatsUseCase_AdminStats_StoreVacio(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: &repository.DashboardTotals{}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), out.Users)
	assert.Equal(t, int64(0), out.MenuItems)
	assert.Equal(t, int64(0), out.Orders)
	assert.True(t, out.Revenue.IsZero())
}

func TestStatsUseCase_AdminStats_MapeaTotales(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: &repository.DashboardTotals{
		Users:     12,
		MenuItems: 34,
		Orders:    5,
		Revenue:   decimal.RequireFromString("187.50"),
	}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.AdminStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), out.Users)
	assert.Equal(t, int64(34), out.MenuItems)
	assert.Equal(t, int64(5), out.Orders)
	assert.True(t, decimal.RequireFromString("187.50").Equal(out.Revenue))
}

func TestStatsUseCase_AdminStats_ErrorDelStore(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("conexión rechazada")}
	uc := analytics.NewStatsUseCase(repo)

	_, err := uc.AdminStats(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totales del panel")
}

// Sin ventas el resultado es una lista vacía, nunca nil ni error.
func TestStatsUseCase_OrderStats_SinVentas(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeAnalyticsRepo{})

	out, err := uc.OrderStats(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestStatsUseCase_OrderStats_MapeaCategorias(t *testing.T) {
	repo := &fakeAnalyticsRepo{categories: []repository.CategoryOrderStats{
		{Category: "pizza", Quantity: 3, TotalRevenue: decimal.RequireFromString("42.00")},
		{Category: "salad", Quantity: 1, TotalRevenue: decimal.RequireFromString("9.99")},
	}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.OrderStats(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "pizza", out[0].Category)
	assert.Equal(t, int64(3), out[0].Quantity)
	assert.True(t, decimal.RequireFromString("42.00").Equal(out[0].TotalRevenue))
	assert.Equal(t, "salad", out[1].Category)
}

// Un usuario sin pagos obtiene ceros; el email llega al repositorio tal cual.
func TestStatsUseCase_UserStats_UsuarioSinPagos(t *testing.T) {
	repo := &fakeAnalyticsRepo{userTotals: &repository.UserTotals{}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.UserStats(context.Background(), "nuevo@dishdash.app")
	require.NoError(t, err)

	assert.Equal(t, "nuevo@dishdash.app", repo.askedEmail)
	assert.Equal(t, int64(0), out.Orders)
	assert.True(t, out.TotalPayments.IsZero())
	assert.Equal(t, int64(0), out.TotalMenuItems)
}

func TestStatsUseCase_UserStats_MapeaAgregados(t *testing.T) {
	repo := &fakeAnalyticsRepo{userTotals: &repository.UserTotals{
		Orders:         2,
		TotalPayments:  decimal.NewFromInt(15),
		TotalMenuItems: 3,
	}}
	uc := analytics.NewStatsUseCase(repo)

	out, err := uc.UserStats(context.Background(), "cliente@dishdash.app")
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Orders)
	assert.True(t, decimal.NewFromInt(15).Equal(out.TotalPayments))
	assert.Equal(t, int64(3), out.TotalMenuItems)
}

func TestStatsUseCase_UserStats_ErrorDelStore(t *testing.T) {
	repo := &fakeAnalyticsRepo{err: errors.New("conexión rechazada")}
	uc := analytics.NewStatsUseCase(repo)

	_, err := uc.UserStats(context.Background(), "cliente@dishdash.app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agregados de usuario")
}
