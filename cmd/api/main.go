package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/gestor-ventas-api/internal/application/auth"
	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	infrmail "github.com/jhoicas/gestor-ventas-api/internal/infrastructure/mail"
	"github.com/jhoicas/gestor-ventas-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/gestor-ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gestor-ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/gestor-ventas-api/internal/interfaces/http"
	"github.com/jhoicas/gestor-ventas-api/pkg/config"
	"github.com/jhoicas/gestor-ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	numbers := postgres.NewSequenceNumberGenerator(pool)

	// Eventos: RabbitMQ si hay URL, si no se descartan.
	var publisher billing.EventPublisher = messaging.NopPublisher{}
	if cfg.Messaging.Enabled() {
		conn, ch, err := messaging.SetupConn(cfg.Messaging.RabbitMQURL, cfg.Messaging.Exchange)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a RabbitMQ")
		}
		defer conn.Close()
		defer ch.Close()
		publisher = messaging.NewPublisher(ch, cfg.Messaging.Exchange)
		log.Info().Str("exchange", cfg.Messaging.Exchange).Msg("publicación de eventos activa")
	}

	mailer, err := infrmail.NewSender(cfg.Mail)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar correo")
	}

	auditUC := usecase.NewAuditLogUseCase(auditRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	brandUC := usecase.NewBrandUseCase(brandRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	providerUC := usecase.NewProviderUseCase(providerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	invoiceSvc := billing.NewInvoiceService(productRepo, invoiceRepo, numbers, publisher)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, userRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, mailer, auth.JWTConfig{
		Secret:            cfg.JWT.Secret,
		ExpMinutes:        cfg.JWT.Expiration,
		RefreshSecret:     cfg.JWT.RefreshSecret,
		RefreshExpMinutes: cfg.JWT.RefreshExpiration,
		ResetSecret:       cfg.JWT.ResetSecret,
		ResetExpMinutes:   cfg.JWT.ResetExpiration,
		Issuer:            cfg.JWT.Issuer,
	}, cfg.Mail.ResetURL)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor de Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     userUC,
		BrandUC:    brandUC,
		CategoryUC: categoryUC,
		ProviderUC: providerUC,
		ProductUC:  productUC,
		AuditLogUC: auditUC,
		InvoiceSvc: invoiceSvc,
		PDFUC:      invoicePDFUC,
		JWTSecret:  cfg.JWT.Secret,
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
