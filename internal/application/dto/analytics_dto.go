package dto

import "github.com/shopspring/decimal"

// AdminStatsResponse totales del panel de administración.
type AdminStatsResponse struct {
	Users     int64           `json:"users"`
	MenuItems int64           `json:"menuItems"`
	Orders    int64           `json:"orders"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// CategoryStatsResponse ventas agrupadas por categoría del menú.
type CategoryStatsResponse struct {
	Category     string          `json:"category"`
	Quantity     int64           `json:"quantity"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// UserStatsResponse agregados de compra de un usuario.
type UserStatsResponse struct {
	Orders         int64           `json:"orders"`
	TotalPayments  decimal.Decimal `json:"totalPayments"`
	TotalMenuItems int64           `json:"totalMenuItems"`
}
