package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/tu-usuario/fieldops-pro/docs"
	"github.com/tu-usuario/fieldops-pro/internal/application/auth"
	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
	"github.com/tu-usuario/fieldops-pro/internal/application/dispatch"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	domaingeo "github.com/tu-usuario/fieldops-pro/internal/domain/geo"
	infraai "github.com/tu-usuario/fieldops-pro/internal/infrastructure/ai"
	infrageo "github.com/tu-usuario/fieldops-pro/internal/infrastructure/geo"
	"github.com/tu-usuario/fieldops-pro/internal/infrastructure/payments"
	infrapdf "github.com/tu-usuario/fieldops-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/fieldops-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/fieldops-pro/internal/infrastructure/realtime"
	httpRouter "github.com/tu-usuario/fieldops-pro/internal/interfaces/http"
	"github.com/tu-usuario/fieldops-pro/pkg/config"
	"github.com/tu-usuario/fieldops-pro/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios sobre el pool; el TxRunner crea los suyos atados a cada tx.
	tenantRepo := postgres.NewTenantRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	pricebookRepo := postgres.NewPricebookRepository(pool)
	assetRepo := postgres.NewAssetRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Canal realtime: una sala por tenant.
	hub := realtime.NewHub(log.Component("realtime"))
	go hub.Run(ctx)
	publisher := httpRouter.NewInstrumentedPublisher(hub)

	// Geo simulado: geocoder y posiciones de técnicos alrededor del centro configurado.
	cityCenter := domaingeo.Point{Lat: cfg.Geo.CityLat, Lng: cfg.Geo.CityLng}
	locator := infrageo.NewMockLocator(cityCenter)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, tenantRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo, locator, txRunner)
	jobUC := usecase.NewJobUseCase(jobRepo, customerRepo, publisher)
	assetUC := usecase.NewAssetUseCase(assetRepo, customerRepo)
	pricebookUC := usecase.NewPricebookUseCase(pricebookRepo)
	searchUC := usecase.NewSearchUseCase(customerRepo, jobRepo, pricebookRepo)
	seedUC := usecase.NewSeedUseCase(userRepo, customerRepo, jobRepo, pricebookRepo, assetRepo, locator, txRunner)
	marketUC := usecase.NewMarketUseCase()
	webhookUC := usecase.NewWebhookUseCase(tenantRepo, cfg.Webhook.LemonSqueezySecret)

	deepseekSvc := infraai.NewDeepSeekService(cfg.AI.APIKey, cfg.AI.Model)
	aiUC := usecase.NewAIUseCase(deepseekSvc)

	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, jobRepo)
	generateUC := billing.NewGenerateInvoiceUseCase(txRunner, jobRepo, invoiceRepo, pricebookRepo)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, tenantRepo, customerRepo, jobRepo, pdfGenerator)
	paymentUC := billing.NewPaymentUseCase(invoiceRepo,
		payments.NewStripeClient(cfg.Payments.StripeSecretKey),
		payments.NewPayPalClient(cfg.Payments.PayPalClientID, cfg.Payments.PayPalClientSecret, cfg.Payments.PayPalBaseURL),
	)

	recommendUC := dispatch.NewRecommendUseCase(userRepo, jobRepo, customerRepo, locator, cityCenter)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.ClientURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Signature",
	}))
	app.Use(httpRouter.MetricsMiddleware())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FieldOps Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CustomerUC:  customerUC,
		JobUC:       jobUC,
		AssetUC:     assetUC,
		PricebookUC: pricebookUC,
		SearchUC:    searchUC,
		SeedUC:      seedUC,
		MarketUC:    marketUC,
		WebhookUC:   webhookUC,
		AIUC:        aiUC,
		InvoiceUC:   invoiceUC,
		GenerateUC:  generateUC,
		PDFUC:       pdfUC,
		PaymentUC:   paymentUC,
		RecommendUC: recommendUC,
		Hub:         hub,
		JWTSecret:   cfg.JWT.Secret,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
