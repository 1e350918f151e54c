package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/alerts"
	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP de alertas operativas.
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List devuelve el conjunto de alertas vivas.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}

// Acknowledge marca una alerta como reconocida; repetir no es error.
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	if err := h.uc.Acknowledge(c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alerta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
