package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/alerts"
	"github.com/jhoicas/pharma-erp-api/internal/application/analytics"
	"github.com/jhoicas/pharma-erp-api/internal/application/inventory"
	"github.com/jhoicas/pharma-erp-api/internal/application/production"
	"github.com/jhoicas/pharma-erp-api/internal/application/sales"
	"github.com/jhoicas/pharma-erp-api/internal/application/waste"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC  *inventory.UseCase
	ProductionUC *production.UseCase
	WasteUC      *waste.UseCase
	AlertsUC     *alerts.UseCase
	SalesUC      *sales.UseCase
	AnalyticsUC  *analytics.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Inventario
	stock := api.Group("/stock-items")
	stockHandler := NewStockHandler(deps.InventoryUC)
	stock.Post("/", stockHandler.Add)
	stock.Get("/", stockHandler.List)
	stock.Post("/:id/adjust", stockHandler.Adjust)

	// Producción
	prod := api.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	prod.Post("/", productionHandler.Plan)
	prod.Get("/", productionHandler.List)
	prod.Get("/efficiency", productionHandler.Efficiency)
	prod.Post("/:id/start", productionHandler.Start)
	prod.Post("/:id/complete", productionHandler.Complete)
	prod.Post("/:id/cancel", productionHandler.Cancel)

	// Mermas
	wasteGroup := api.Group("/waste")
	wasteHandler := NewWasteHandler(deps.WasteUC)
	wasteGroup.Post("/", wasteHandler.Record)
	wasteGroup.Get("/", wasteHandler.List)
	wasteGroup.Post("/:id/approve", wasteHandler.Approve)

	// Alertas
	alertGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertsUC)
	alertGroup.Get("/", alertHandler.List)
	alertGroup.Post("/:id/acknowledge", alertHandler.Acknowledge)

	// Snapshots comerciales (módulos de ventas y finanzas)
	salesHandler := NewSalesHandler(deps.SalesUC)
	api.Post("/sales-orders", salesHandler.AddOrder)
	api.Post("/transactions", salesHandler.AddTransaction)

	// Analítica
	analyticsGroup := api.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.WasteUC)
	analyticsGroup.Get("/profitability", analyticsHandler.Profitability)
	analyticsGroup.Get("/turnover", analyticsHandler.Turnover)
	analyticsGroup.Get("/wastage", analyticsHandler.Wastage)
}
