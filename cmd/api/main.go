package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/puntoventa/internal/application/purchasing"
	"github.com/jhoicas/puntoventa/internal/application/reports"
	"github.com/jhoicas/puntoventa/internal/application/sales"
	"github.com/jhoicas/puntoventa/internal/application/usecase"
	"github.com/jhoicas/puntoventa/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/puntoventa/internal/interfaces/http"
	"github.com/jhoicas/puntoventa/pkg/config"
	"github.com/jhoicas/puntoventa/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	location, err := cfg.POS.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}

	productRepo := memory.NewProductRepository()
	categoryRepo := memory.NewCategoryRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	if cfg.App.SeedDemo {
		if err := memory.SeedDemo(productRepo, categoryRepo, invoiceRepo); err != nil {
			log.Fatal().Err(err).Msg("carga de datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo, cfg.POS.DefaultCategoryColor)
	productUC := usecase.NewProductUseCase(productRepo, categoryUC)
	invoiceUC := usecase.NewInvoiceUseCase(invoiceRepo)
	registerUC := sales.NewRegisterUseCase(productRepo, invoiceRepo, sales.RegisterConfig{
		Cashier:  cfg.POS.Cashier,
		Location: location,
	}, log)
	purchaseUC := purchasing.NewUseCase(invoiceRepo, categoryUC, purchasing.Config{Location: location}, log)
	reportsUC := reports.NewUseCase(invoiceRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		InvoiceUC:  invoiceUC,
		Register:   registerUC,
		Purchasing: purchaseUC,
		Reports:    reportsUC,
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
