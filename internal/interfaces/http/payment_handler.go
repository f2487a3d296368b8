package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dishdash/dishdash-api/internal/application/checkout"
	"github.com/dishdash/dishdash-api/internal/application/dto"
	"github.com/dishdash/dishdash-api/internal/application/usecase"
	"github.com/dishdash/dishdash-api/internal/domain"
)

// PaymentHandler maneja pagos: intents, finalización de pedido, historial
// y administración.
type PaymentHandler struct {
	intents  *checkout.PaymentIntentUseCase
	finalize *checkout.FinalizeOrderUseCase
	payments *usecase.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(
	intents *checkout.PaymentIntentUseCase,
	finalize *checkout.FinalizeOrderUseCase,
	payments *usecase.PaymentUseCase,
) *PaymentHandler {
	return &PaymentHandler{intents: intents, finalize: finalize, payments: payments}
}

// CreateIntent godoc
// @Summary      Crear payment intent para cobro con tarjeta
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PaymentIntentRequest  true  "price en dólares"
// @Success      200   {object}  dto.PaymentIntentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var in dto.PaymentIntentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.intents.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price debe ser mayor a cero"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Finalizar un pedido pagado
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Pago completado con cartIds y menuItemIds"
// @Success      201   {object}  dto.FinalizeResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.TransactionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y transactionId son requeridos"})
	}
	out, err := h.finalize.Execute(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PERSISTENCE", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// History godoc
// @Summary      Historial de pagos del usuario
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Param        email  path  string  true  "Email del usuario (debe ser el propio)"
// @Success      200  {array}  dto.PaymentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /payments/{email} [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	email := c.Params("email")
	out, err := h.payments.HistoryByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los pagos
// @Tags         payments
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PaymentResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /allPayments [get]
func (h *PaymentHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.payments.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Actualizar el estado de un pago
// @Tags         payments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pago"
// @Param        body  body  dto.UpdatePaymentStatusRequest  true  "Nuevo estado"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /allPayments/{id} [patch]
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.payments.UpdateStatus(id, in); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
