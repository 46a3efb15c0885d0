package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// AssetHandler maneja el historial de equipos instalados.
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Create POST /api/assets
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.Create(tenantID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_id y type son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el cliente no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(asset)
}

// Delete DELETE /api/assets/:id
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if err := h.uc.Delete(tenantID, c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
