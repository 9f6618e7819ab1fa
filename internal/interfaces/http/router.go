package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/picklist"
	"github.com/jhoicas/bodega-api/internal/application/stock"
	"github.com/jhoicas/bodega-api/internal/application/usecase"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LocationUC   *usecase.LocationUseCase
	ProductUC    *usecase.ProductUseCase
	OrderUC      *usecase.OrderUseCase
	AllocationUC *stock.AllocationUseCase
	PickListUC   *picklist.GeneratorUseCase
	StockRepo    repository.StockEntryRepository
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Locations (protegido; borrar solo admin/bodeguero)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), locationHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:barcode", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), productHandler.Delete)

	// Stock (protegido): altas, asignación, traslados y consultas por posición
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.AllocationUC, deps.StockRepo)
	stockGroup.Post("/add", stockHandler.AddStock)
	stockGroup.Post("/assign", stockHandler.AssignProduct)
	stockGroup.Post("/transfer", stockHandler.Transfer)
	stockGroup.Get("/products/:product_id", stockHandler.SpotsByProduct)
	stockGroup.Get("/locations/:location_id", stockHandler.SpotsByLocation)

	// Orders y pick lists (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	pickListHandler := NewPickListHandler(deps.PickListUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id/status", orderHandler.UpdateStatus)
	orders.Get("/:order_id/picklist", pickListHandler.Generate)
	orders.Get("/:order_id/picklist.pdf", pickListHandler.GeneratePDF)
}
