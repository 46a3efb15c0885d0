package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
)

// AIHandler maneja el asistente de texto (chat y revisión de tono).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Chat POST /api/ai/chat
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.AIChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Chat(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "messages no puede estar vacío"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UPSTREAM", Message: err.Error()})
	}
	return c.JSON(resp)
}

// CheckTone POST /api/ai/tone-check
func (h *AIHandler) CheckTone(c *fiber.Ctx) error {
	var in dto.ToneCheckRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.CheckTone(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UPSTREAM", Message: err.Error()})
	}
	return c.JSON(resp)
}
