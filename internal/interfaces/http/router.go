package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/catalogo-admin/internal/application/auth"
	"github.com/tu-usuario/catalogo-admin/internal/application/catalog"
	"github.com/tu-usuario/catalogo-admin/internal/application/orders"
	"github.com/tu-usuario/catalogo-admin/internal/application/views"
	"github.com/tu-usuario/catalogo-admin/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *catalog.ProductUseCase
	CategoryUC *catalog.CategoryUseCase
	OrderUC    *orders.UseCase
	Composer   *views.Composer
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	UploadDir  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + rol admin (panel de administración)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Composer, deps.UploadDir)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id/status", productHandler.SetStatus)
	products.Delete("/:id", productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Composer, deps.UploadDir)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.Composer)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Get("/:id/pdf", orderHandler.ExportPDF)
	ordersGroup.Put("/:id/status", orderHandler.UpdateStatus)
	ordersGroup.Delete("/:id", orderHandler.Delete)
}
