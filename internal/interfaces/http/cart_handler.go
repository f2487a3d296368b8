package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/application/usecase"
	"github.com/dishdash/dishdash-api/internal/domain"
)

// CartHandler maneja las peticiones HTTP del carrito.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// List godoc
// @Summary      Listar el carrito de un usuario
// @Tags         carts
// @Produce      json
// @Param        email  query  string  true  "Email del dueño del carrito"
// @Success      200  {array}  dto.CartItemResponse
// @Router       /carts [get]
func (h *CartHandler) List(c *fiber.Ctx) error {
	email := c.Query("email")
	out, err := h.uc.ListByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar un plato al carrito
// @Tags         carts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCartItemRequest  true  "Plato y snapshot de precio"
// @Success      201   {object}  dto.CartItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /carts [post]
func (h *CartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y menuItemId son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Delete godoc
// @Summary      Quitar una entrada del carrito
// @Tags         carts
// @Produce      json
// @Param        id  path  string  true  "ID de la entrada"
// @Success      204
// @Router       /carts/{id} [delete]
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Remove(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
