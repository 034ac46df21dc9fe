package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
)

// InvoiceHandler maneja la emisión y consulta de facturas (protegido).
type InvoiceHandler struct {
	uc  *billing.InvoiceUseCase
	log zerolog.Logger
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, log zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, log: log}
}

// Issue emite la factura de un residente. Con ?format=pdf responde el PDF; si no, JSON con data_url.
// POST /api/residents/:id/invoices
func (h *InvoiceHandler) Issue(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var in dto.IssueInvoiceRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	out, doc, err := h.uc.IssueInvoice(c.UserContext(), id, GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if c.Query("format") == "pdf" {
		c.Status(fiber.StatusCreated)
		return sendPDF(c, doc, "attachment")
	}
	out.DataURL = doc.DataURL()
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByResident lista las facturas emitidas a un residente.
// GET /api/residents/:id/invoices
func (h *InvoiceHandler) ListByResident(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.ListByResident(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

// GetByID obtiene el detalle de una factura.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetInvoice(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DownloadPDF regenera el PDF de una factura guardada.
// GET /api/invoices/:id/pdf
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	doc, err := h.uc.RenderStoredInvoice(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return sendPDF(c, doc, "inline")
}

func sendPDF(c *fiber.Ctx, doc *billing.Document, disposition string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`%s; filename="%s"`, disposition, doc.Filename))
	return c.Send(doc.Bytes())
}
