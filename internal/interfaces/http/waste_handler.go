package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pharma-erp-api/internal/application/dto"
	"github.com/jhoicas/pharma-erp-api/internal/application/waste"
	"github.com/jhoicas/pharma-erp-api/internal/domain"
)

// WasteHandler maneja las peticiones HTTP del ledger de mermas.
type WasteHandler struct {
	uc *waste.UseCase
}

// NewWasteHandler construye el handler.
func NewWasteHandler(uc *waste.UseCase) *WasteHandler {
	return &WasteHandler{uc: uc}
}

// Record registra una merma; el valor se fija con el costo unitario vigente.
func (h *WasteHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.Record(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad o causa inválida"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

// Approve cambia el flag de aprobación de un evento.
func (h *WasteHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveWasteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	event, err := h.uc.SetApproved(c.Params("id"), in.Approved)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "evento de merma no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(event)
}

// List devuelve todos los eventos de merma.
func (h *WasteHandler) List(c *fiber.Ctx) error {
	events, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"total": len(events), "events": events})
}
