package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/puntoventa/internal/application/purchasing"
	"github.com/jhoicas/puntoventa/internal/application/reports"
	"github.com/jhoicas/puntoventa/internal/application/sales"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	InvoiceUC  *usecase.InvoiceUseCase
	Register   *sales.RegisterUseCase
	Purchasing *purchasing.UseCase
	Reports    *reports.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/barcode/:code", productHandler.FindByBarcode)
	products.Post("/barcode", productHandler.GenerateBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/palette", categoryHandler.Palette)
	categories.Get("/color", categoryHandler.Color)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Sales (caja)
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.Register)
	salesGroup.Get("/cart", salesHandler.Cart)
	salesGroup.Post("/cart/scan", salesHandler.Scan)
	salesGroup.Post("/cart/items", salesHandler.AddItem)
	salesGroup.Put("/cart/items/:ref", salesHandler.UpdateItem)
	salesGroup.Delete("/cart/items/:ref", salesHandler.RemoveItem)
	salesGroup.Post("/checkout", salesHandler.Checkout)

	// Purchases (borrador)
	purchases := api.Group("/purchases/draft")
	purchaseHandler := NewPurchaseHandler(deps.Purchasing)
	purchases.Get("/", purchaseHandler.Draft)
	purchases.Put("/header", purchaseHandler.SetHeader)
	purchases.Post("/lines", purchaseHandler.AddLine)
	purchases.Put("/lines/:index", purchaseHandler.UpdateLine)
	purchases.Delete("/lines/:index", purchaseHandler.RemoveLine)
	purchases.Post("/save", purchaseHandler.Save)

	// Invoices (solo lectura)
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	invoices.Get("/:kind", invoiceHandler.List)
	invoices.Get("/:kind/:id", invoiceHandler.GetByID)

	// Reports
	reportHandler := NewReportHandler(deps.Reports)
	api.Get("/reports/:kind", reportHandler.Get)
}
