package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/production"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
)

// ProductionHandler maneja las peticiones HTTP del ledger de producción.
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Plan crea un lote en estado planned.
func (h *ProductionHandler) Plan(c *fiber.Ctx) error {
	var in dto.PlanProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.Plan(in)
	if err != nil {
		return productionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(batch)
}

// Start transición planned → in-progress.
func (h *ProductionHandler) Start(c *fiber.Ctx) error {
	batch, err := h.uc.Start(c.Params("id"))
	if err != nil {
		return productionError(c, err)
	}
	return c.JSON(batch)
}

// Complete transición in-progress → completed con cantidades reales.
func (h *ProductionHandler) Complete(c *fiber.Ctx) error {
	var in dto.CompleteProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.Complete(c.Params("id"), in)
	if err != nil {
		return productionError(c, err)
	}
	return c.JSON(batch)
}

// Cancel transición planned|in-progress → cancelled.
func (h *ProductionHandler) Cancel(c *fiber.Ctx) error {
	batch, err := h.uc.Cancel(c.Params("id"))
	if err != nil {
		return productionError(c, err)
	}
	return c.JSON(batch)
}

// List devuelve todos los lotes.
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	batches, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(batches), "batches": batches})
}

// Efficiency agregados de eficiencia y yield promedio sobre todos los lotes.
func (h *ProductionHandler) Efficiency(c *fiber.Ctx) error {
	eff, err := h.uc.Efficiency()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(eff)
}

// productionError mapea los errores de dominio del ledger de producción.
func productionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote o materia prima no encontrado"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado no permitida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
