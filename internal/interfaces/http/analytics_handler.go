package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/analytics"
	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/waste"
)

// AnalyticsHandler expone la analítica transversal de los tableros.
type AnalyticsHandler struct {
	uc      *analytics.UseCase
	wasteUC *waste.UseCase
}

// NewAnalyticsHandler construye el handler. La analítica de merma delega en
// el ledger de mermas, que es quien conoce sus totales.
func NewAnalyticsHandler(uc *analytics.UseCase, wasteUC *waste.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, wasteUC: wasteUC}
}

// Profitability análisis de rentabilidad global.
func (h *AnalyticsHandler) Profitability(c *fiber.Ctx) error {
	out, err := h.uc.Profitability()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Turnover rotación de inventario.
func (h *AnalyticsHandler) Turnover(c *fiber.Ctx) error {
	out, err := h.uc.InventoryTurnover()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Wastage totales de merma por causa.
func (h *AnalyticsHandler) Wastage(c *fiber.Ctx) error {
	out, err := h.wasteUC.Totals()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
