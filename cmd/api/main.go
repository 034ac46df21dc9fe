package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/billing"
	"github.com/yonaiky/ResidentManagement-sub000/internal/application/usecase"
	"github.com/yonaiky/ResidentManagement-sub000/internal/domain/invoicing"
	infrapdf "github.com/yonaiky/ResidentManagement-sub000/internal/infrastructure/pdf"
	"github.com/yonaiky/ResidentManagement-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/yonaiky/ResidentManagement-sub000/internal/interfaces/http"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/config"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/dgi"
	"github.com/yonaiky/ResidentManagement-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	if cfg.DB.AutoMigrate {
		migrator, err := postgres.NewMigrator(cfg.DB.ConnectionString(), log.Component("migrate"))
		if err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		if err := migrator.Up(); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		_ = migrator.Close()
	}

	pool, err := postgres.NewPool(ctx, cfg.DB, log.Component("postgres"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	residentRepo := postgres.NewResidentRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	loc := cfg.Billing.Location()
	clock := invoicing.SystemClock(loc)
	// Sin configuración fiscal activa el NCF sale de una secuencia aleatoria.
	ids := invoicing.NewIdentifierGenerator(clock,
		invoicing.NewRandomSequence(9999),
		invoicing.NewRandomSequence(dgi.MaxNCFSequence),
		cfg.Billing.NCFSeries,
	)

	residentUC := billing.NewResidentUseCase(residentRepo, log.Component("residents"))
	periodUC := billing.NewPeriodUseCase(residentRepo, paymentRepo, cfg.Billing.MonthlyFee, clock)
	paymentUC := billing.NewPaymentUseCase(residentRepo, paymentRepo, cfg.Billing.MonthlyFee, clock, log.Component("payments"))
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, clock, log.Component("settings"))

	// PDF: comprobante fiscal con pie legal y QR de verificación
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(log.Component("pdf"))
	invoiceUC := billing.NewInvoiceUseCase(
		periodUC, residentRepo, invoiceRepo, settingsRepo, txRunner, pdfGenerator, ids, clock,
		billing.InvoiceConfig{
			TaxRate:  cfg.Billing.TaxRate,
			Currency: cfg.Billing.CurrencyName,
			DefaultLegal: invoicing.LegalInfo{
				ResolutionNumber: cfg.Billing.DefaultResolution,
				ValidUntil:       cfg.Billing.DefaultResolutionValidUntil(),
				VerificationURL:  cfg.Billing.VerificationURL,
			},
		},
		log.Component("invoices"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Resident Billing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ResidentUC: residentUC,
		PaymentUC:  paymentUC,
		PeriodUC:   periodUC,
		InvoiceUC:  invoiceUC,
		SettingsUC: settingsUC,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
		Logger:     log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
