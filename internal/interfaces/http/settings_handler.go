package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/dto"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/usecase"
)

// SettingsHandler expone la configuración de empresa y fiscal. Las escrituras son solo para admin.
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log zerolog.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, log zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// GetCompany GET /api/settings/company
func (h *SettingsHandler) GetCompany(c *fiber.Ctx) error {
	out, err := h.uc.GetCompany(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateCompany PUT /api/settings/company
func (h *SettingsHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.CompanySettingsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateCompany(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetFiscal GET /api/settings/fiscal
func (h *SettingsHandler) GetFiscal(c *fiber.Ctx) error {
	out, err := h.uc.GetFiscal(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateFiscal PUT /api/settings/fiscal
func (h *SettingsHandler) UpdateFiscal(c *fiber.Ctx) error {
	var in dto.FiscalSettingsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpdateFiscal(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}
