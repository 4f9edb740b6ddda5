package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-ventas-api/internal/application/auth"
	"github.com/jhoicas/gestor-ventas-api/internal/application/billing"
	"github.com/jhoicas/gestor-ventas-api/internal/application/usecase"
	"github.com/jhoicas/gestor-ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	BrandUC    *usecase.BrandUseCase
	CategoryUC *usecase.CategoryUseCase
	ProviderUC *usecase.ProviderUseCase
	ProductUC  *usecase.ProductUseCase
	AuditLogUC *usecase.AuditLogUseCase
	InvoiceSvc *billing.InvoiceService
	PDFUC      *billing.PDFUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	auditorOnly := RequireRole(entity.RoleAuditor)

	// Auth (público salvo logout)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.AuditLogUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	users := protected.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC, deps.AuditLogUC)
	users.Get("/perfil", userHandler.Profile)
	users.Get("/email/:email", auditorOnly, userHandler.GetByEmail)
	users.Post("/", auditorOnly, userHandler.Create)
	users.Get("/", auditorOnly, userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", auditorOnly, userHandler.Delete)

	brands := protected.Group("/marcas")
	brandHandler := NewBrandHandler(deps.BrandUC, deps.AuditLogUC)
	brands.Get("/", brandHandler.List)
	brands.Get("/nombre/:name", brandHandler.GetByName)
	brands.Get("/:id", brandHandler.GetByID)
	brands.Post("/", auditorOnly, brandHandler.Create)
	brands.Put("/:id", auditorOnly, brandHandler.Update)
	brands.Delete("/:id", auditorOnly, brandHandler.Delete)

	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)

	providers := protected.Group("/proveedores")
	providerHandler := NewProviderHandler(deps.ProviderUC)
	providers.Get("/", providerHandler.List)
	providers.Get("/:id", providerHandler.GetByID)

	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.AuditLogUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", auditorOnly, productHandler.Create)
	products.Put("/:id", auditorOnly, productHandler.Update)
	products.Delete("/:id", auditorOnly, productHandler.Delete)

	invoices := protected.Group("/facturas")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc, deps.PDFUC, deps.AuditLogUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Delete("/:id", auditorOnly, invoiceHandler.Delete)

	logs := protected.Group("/logs")
	logHandler := NewAuditLogHandler(deps.AuditLogUC)
	logs.Post("/", logHandler.Create)
	logs.Get("/", auditorOnly, logHandler.List)
}
