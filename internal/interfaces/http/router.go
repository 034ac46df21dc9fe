package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/usecase"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ResidentUC *billing.ResidentUseCase
	PaymentUC  *billing.PaymentUseCase
	PeriodUC   *billing.PeriodUseCase
	InvoiceUC  *billing.InvoiceUseCase
	SettingsUC *usecase.SettingsUseCase
	JWTSecret  string
	JWTIssuer  string
	Logger     zerolog.Logger
}

// Router registra las rutas de la API. Todo bajo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))
	adminOnly := RequireRole(entity.RoleAdmin)

	residentHandler := NewResidentHandler(deps.ResidentUC, deps.Logger)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.PeriodUC, deps.Logger)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Logger)
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Logger)

	// Residentes
	residents := api.Group("/residents")
	residents.Post("/", residentHandler.Create)
	residents.Get("/", residentHandler.List)
	residents.Get("/:id", residentHandler.GetByID)
	residents.Put("/:id", residentHandler.Update)

	// Períodos, pagos y facturas del residente
	residents.Get("/:id/periods", paymentHandler.Periods)
	residents.Get("/:id/payments", paymentHandler.List)
	residents.Post("/:id/payments", paymentHandler.Record)
	residents.Get("/:id/invoices", invoiceHandler.ListByResident)
	residents.Post("/:id/invoices", invoiceHandler.Issue)

	// Facturas
	invoices := api.Group("/invoices")
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Configuración
	settings := api.Group("/settings")
	settings.Get("/company", settingsHandler.GetCompany)
	settings.Put("/company", adminOnly, settingsHandler.UpdateCompany)
	settings.Get("/fiscal", settingsHandler.GetFiscal)
	settings.Put("/fiscal", adminOnly, settingsHandler.UpdateFiscal)
}
