package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/pharma-erp-api/internal/application/alerts"
	"github.com/jhoicas/pharma-erp-api/internal/application/analytics"
	"github.com/jhoicas/pharma-erp-api/internal/application/inventory"
	"github.com/jhoicas/pharma-erp-api/internal/application/production"
	"github.com/jhoicas/pharma-erp-api/internal/application/sales"
	"github.com/jhoicas/pharma-erp-api/internal/application/waste"
	"github.com/jhoicas/pharma-erp-api/internal/domain/stock"
	"github.com/jhoicas/pharma-erp-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/pharma-erp-api/internal/interfaces/http"
	"github.com/jhoicas/pharma-erp-api/pkg/config"
	"github.com/jhoicas/pharma-erp-api/pkg/logger"
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

	// Motor de dominio: clasificador + motor de alertas comparten la misma
	// ventana de pre-vencimiento para que status y alertas cuenten lo mismo.
	classifier := stock.NewClassifier(cfg.Stock.NearExpiryDays)
	alertEngine := alerts.NewEngine(cfg.Stock.NearExpiryDays)
	store := memory.NewStore(alertEngine, time.Now)

	inventoryUC := inventory.NewUseCase(store, classifier,
		inventory.Thresholds{FinishedDefault: cfg.Stock.FinishedDefaultReorder},
		time.Now, log)
	productionUC := production.NewUseCase(store, time.Now, log)
	wasteUC := waste.NewUseCase(store, time.Now, log)
	alertsUC := alerts.NewUseCase(store)
	salesUC := sales.NewUseCase(store, time.Now, log)
	analyticsUC := analytics.NewUseCase(store)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC:  inventoryUC,
		ProductionUC: productionUC,
		WasteUC:      wasteUC,
		AlertsUC:     alertsUC,
		SalesUC:      salesUC,
		AnalyticsUC:  analyticsUC,
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
