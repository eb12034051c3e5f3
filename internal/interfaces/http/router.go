package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Sucursales-api/internal/application/alerts"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/purchasing"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
	"github.com/jhoicas/Sucursales-api/internal/application/sales"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BranchUC   *usecase.BranchUseCase
	ProductUC  *usecase.ProductUseCase
	SupplierUC *usecase.SupplierUseCase
	UserUC     *usecase.UserUseCase
	AdjustUC   *inventory.AdjustUseCase
	SalesUC    *sales.RecorderUseCase
	TransferUC *transfer.WorkflowUseCase
	PurchaseUC *purchasing.UseCase
	AlertUC    *alerts.EmitterUseCase
	ReportUC   *reports.AggregatorUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Branches
	branches := api.Group("/branches")
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)

	// Inventory
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.AdjustUC)
	invGroup.Post("/adjust", inventoryHandler.Adjust)
	invGroup.Get("/:branchId", inventoryHandler.ListByBranch)

	// Sales
	salesGroup := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", salesHandler.Record)
	salesGroup.Get("/branch/:branchId", salesHandler.ListByBranch)
	salesGroup.Get("/product/:productId", salesHandler.ListByProduct)

	// Transfers
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.ListAll)
	transfers.Get("/branch/:branchId", transferHandler.ListByBranch)
	transfers.Put("/:id/status", transferHandler.UpdateStatus)

	// Purchase orders
	orders := api.Group("/purchase-orders")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	orders.Post("/", purchaseHandler.Create)
	orders.Get("/", purchaseHandler.ListAll)
	orders.Get("/branch/:branchId", purchaseHandler.ListByBranch)
	orders.Get("/supplier/:supplierId", purchaseHandler.ListBySupplier)
	orders.Put("/:id/status", purchaseHandler.UpdateStatus)
	orders.Post("/:id/receive", purchaseHandler.Receive)

	// Alerts
	alertGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alertGroup.Post("/", alertHandler.Create)
	alertGroup.Get("/", alertHandler.ListAll)
	alertGroup.Get("/branch/:branchId", alertHandler.ListByBranch)
	alertGroup.Put("/:id/read", alertHandler.MarkRead)
	alertGroup.Delete("/:id", alertHandler.Delete)

	// Reports
	reportGroup := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportGroup.Get("/branch/:branchId/:month/pdf", reportHandler.BranchPDF)
	reportGroup.Get("/branch/:branchId/:month", reportHandler.Branch)
	reportGroup.Get("/company/:month", reportHandler.Company)
}
