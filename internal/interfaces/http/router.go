package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/auth"
	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
	"github.com/tu-usuario/fieldops-pro/internal/application/dispatch"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/infrastructure/realtime"
	"github.com/tu-usuario/fieldops-pro/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CustomerUC  *usecase.CustomerUseCase
	JobUC       *usecase.JobUseCase
	AssetUC     *usecase.AssetUseCase
	PricebookUC *usecase.PricebookUseCase
	SearchUC    *usecase.SearchUseCase
	SeedUC      *usecase.SeedUseCase
	MarketUC    *usecase.MarketUseCase
	WebhookUC   *usecase.WebhookUseCase
	AIUC        *usecase.AIUseCase
	InvoiceUC   *billing.InvoiceUseCase
	GenerateUC  *billing.GenerateInvoiceUseCase
	PDFUC       *billing.PDFUseCase
	PaymentUC   *billing.PaymentUseCase
	RecommendUC *dispatch.RecommendUseCase
	Hub         *realtime.Hub
	JWTSecret   string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Públicos fuera de /api: datos estáticos para la landing.
	marketHandler := NewMarketHandler(deps.MarketUC)
	app.Get("/pricing/market", marketHandler.MarketRates)
	app.Get("/upsells/suggestions", marketHandler.UpsellSuggestions)

	// Canal realtime (token por query param).
	WebSocketHandlers(app, deps.Hub, deps.JWTSecret)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, deps.SeedUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/quick-access", authHandler.QuickAccess)

	// Webhook de suscripciones (público pero firmado con HMAC)
	webhookHandler := NewWebhookHandler(deps.WebhookUC, deps.Log)
	api.Post("/webhook", webhookHandler.Handle)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido; crear usuarios es solo de admin)
	users := protected.Group("/users")
	dispatchHandler := NewDispatchHandler(deps.RecommendUC, deps.UserUC)
	users.Post("/", RequireRole(entity.RoleAdmin), authHandler.CreateUser)
	users.Get("/technicians", dispatchHandler.ListTechnicians)

	// Customers (protegido)
	customers := protected.Group("/customers")
	assetHandler := NewAssetHandler(deps.AssetUC)
	jobHandler := NewJobHandler(deps.JobUC)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.AssetUC, deps.JobUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Get("/:id/assets", customerHandler.ListAssets)

	// Jobs (protegido, tablero Kanban)
	jobs := protected.Group("/jobs")
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Patch("/:id/status", jobHandler.UpdateStatus)
	jobs.Delete("/:id", jobHandler.Delete)

	// Assets (protegido)
	assets := protected.Group("/assets")
	assets.Post("/", assetHandler.Create)
	assets.Delete("/:id", assetHandler.Delete)

	// Pricebook (protegido)
	pricebook := protected.Group("/pricebook")
	pricebookHandler := NewPricebookHandler(deps.PricebookUC)
	pricebook.Post("/", pricebookHandler.Create)
	pricebook.Get("/", pricebookHandler.List)
	pricebook.Put("/:id", pricebookHandler.Update)
	pricebook.Delete("/:id", pricebookHandler.Delete)

	// Invoices (protegido): CRUD + generación + PDF + links de pago
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.GenerateUC, deps.PDFUC, deps.PaymentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Post("/generate", invoiceHandler.Generate)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Post("/stripe", invoiceHandler.StripeLink)
	invoices.Post("/paypal", invoiceHandler.PayPalLink)

	// Dispatch (protegido)
	dispatchGroup := protected.Group("/dispatch")
	dispatchGroup.Get("/recommend", dispatchHandler.Recommend)
	dispatchGroup.Get("/technicians", dispatchHandler.Technicians)

	// Search (protegido)
	searchHandler := NewSearchHandler(deps.SearchUC)
	protected.Get("/search", searchHandler.Search)

	// AI (protegido)
	aiGroup := protected.Group("/ai")
	aiHandler := NewAIHandler(deps.AIUC)
	aiGroup.Post("/chat", aiHandler.Chat)
	aiGroup.Post("/tone-check", aiHandler.CheckTone)

	// Seed (protegido, solo admin)
	seedHandler := NewSeedHandler(deps.SeedUC)
	protected.Post("/seed", RequireRole(entity.RoleAdmin), seedHandler.Seed)
	protected.Delete("/seed", RequireRole(entity.RoleAdmin), seedHandler.Reset)
}
