package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
)

// ResidentHandler maneja las peticiones HTTP de residentes (protegido).
type ResidentHandler struct {
	uc  *billing.ResidentUseCase
	log zerolog.Logger
}

// NewResidentHandler construye el handler.
func NewResidentHandler(uc *billing.ResidentUseCase, log zerolog.Logger) *ResidentHandler {
	return &ResidentHandler{uc: uc, log: log}
}

// Create registra un residente.
// POST /api/residents
func (h *ResidentHandler) Create(c *fiber.Ctx) error {
	var in dto.ResidentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista residentes con búsqueda y paginación (?q=&limit=&offset=).
// GET /api/residents
func (h *ResidentHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros de paginación inválidos"})
	}
	if err := validate.Struct(page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe estar entre 0 y 100"})
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID obtiene un residente.
// GET /api/residents/:id
func (h *ResidentHandler) GetByID(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update reemplaza los datos de un residente.
// PUT /api/residents/:id
func (h *ResidentHandler) Update(c *fiber.Ctx) error {
	id, ok, err := uuidParam(c, "id")
	if !ok {
		return err
	}
	var in dto.ResidentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
