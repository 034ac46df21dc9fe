package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
)

// PaymentHandler expone pagos y la ventana de períodos de un residente.
type PaymentHandler struct {
	payments *billing.PaymentUseCase
	periods  *billing.PeriodUseCase
	log      zerolog.Logger
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(payments *billing.PaymentUseCase, periods *billing.PeriodUseCase, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{payments: payments, periods: periods, log: log}
}

// Periods devuelve historial, períodos disponibles y preselección.
// GET /api/residents/:id/periods
func (h *PaymentHandler) Periods(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.periods.Periods(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// List devuelve los pagos registrados.
// GET /api/residents/:id/payments
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.payments.List(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// Record registra el pago de un mes.
// POST /api/residents/:id/payments
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var in dto.PaymentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.payments.Record(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
