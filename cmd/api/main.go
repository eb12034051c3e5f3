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
	"github.com/jhoicas/Sucursales-api/internal/application/alerts"
	"github.com/jhoicas/Sucursales-api/internal/application/inventory"
	"github.com/jhoicas/Sucursales-api/internal/application/purchasing"
	"github.com/jhoicas/Sucursales-api/internal/application/reports"
	"github.com/jhoicas/Sucursales-api/internal/application/sales"
	"github.com/jhoicas/Sucursales-api/internal/application/transfer"
	"github.com/jhoicas/Sucursales-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Sucursales-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Sucursales-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Sucursales-api/internal/interfaces/http"
	"github.com/jhoicas/Sucursales-api/pkg/config"
	"github.com/jhoicas/Sucursales-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	branchRepo := postgres.NewBranchRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	branchUC := usecase.NewBranchUseCase(branchRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	adjustUC := inventory.NewAdjustUseCase(txRunner, inventoryRepo)
	salesUC := sales.NewRecorderUseCase(txRunner, saleRepo)
	transferUC := transfer.NewWorkflowUseCase(txRunner, transferRepo)
	purchaseUC := purchasing.NewUseCase(txRunner, orderRepo)
	alertUC := alerts.NewEmitterUseCase(alertRepo)

	// PDF: reporte mensual por sucursal
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewAggregatorUseCase(reportRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sucursales API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BranchUC:   branchUC,
		ProductUC:  productUC,
		SupplierUC: supplierUC,
		UserUC:     userUC,
		AdjustUC:   adjustUC,
		SalesUC:    salesUC,
		TransferUC: transferUC,
		PurchaseUC: purchaseUC,
		AlertUC:    alertUC,
		ReportUC:   reportUC,
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
