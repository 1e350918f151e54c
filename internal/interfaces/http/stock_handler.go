package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/inventory"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
)

// StockHandler maneja las peticiones HTTP de ítems de inventario.
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Add registra un ítem (materia prima o producto terminado). El status del
// ítem no se acepta en el cuerpo: lo deriva el clasificador.
func (h *StockHandler) Add(c *fiber.Ctx) error {
	var in dto.AddStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddStockItem(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Adjust aplica un delta a la cantidad de un ítem; el resultado se recorta
// en 0 y el status se rederiva.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AdjustStock(c.Params("id"), in.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(item)
}

// List devuelve todos los ítems de inventario.
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
