package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dishdash/dishdash-api/internal/application/analytics"
	"github.com/dishdash/dishdash-api/internal/application/dto"
)

// StatsHandler maneja las estadísticas del panel y por usuario.
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// AdminStats godoc
// @Summary      Totales del panel de administración
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /admin-stats [get]
func (h *StatsHandler) AdminStats(c *fiber.Ctx) error {
	out, err := h.uc.AdminStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// OrderStats godoc
// @Summary      Ventas agrupadas por categoría del menú
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CategoryStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /order-stats [get]
func (h *StatsHandler) OrderStats(c *fiber.Ctx) error {
	out, err := h.uc.OrderStats(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UserStats godoc
// @Summary      Agregados de compra de un usuario
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del usuario (debe ser el propio)"
// @Success      200  {object}  dto.UserStatsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /user-stats/{email} [get]
func (h *StatsHandler) UserStats(c *fiber.Ctx) error {
	email := c.Params("email")
	out, err := h.uc.UserStats(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
