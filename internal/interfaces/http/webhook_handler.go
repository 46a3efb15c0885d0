package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/pkg/logger"
)

// WebhookHandler recibe los eventos de suscripción de LemonSqueezy.
// Público pero firmado: HMAC-SHA256 del cuerpo crudo en el header X-Signature.
type WebhookHandler struct {
	uc  *usecase.WebhookUseCase
	log *logger.Logger
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(uc *usecase.WebhookUseCase, log *logger.Logger) *WebhookHandler {
	return &WebhookHandler{uc: uc, log: log}
}

// Handle POST /api/webhook
// La firma se verifica sobre el cuerpo crudo, antes de parsear nada.
func (h *WebhookHandler) Handle(c *fiber.Ctx) error {
	rawBody := c.Body()
	signature := c.Get("X-Signature")

	if !h.uc.VerifySignature(rawBody, signature) {
		h.log.Warn().Msg("webhook con firma inválida rechazado")
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_SIGNATURE", Message: "firma inválida"})
	}

	if err := h.uc.Apply(rawBody); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYLOAD", Message: "payload inválido"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			// tenant desconocido: aceptar para que LemonSqueezy no reintente eternamente
			h.log.Warn().Msg("webhook para tenant inexistente, descartado")
			return c.SendStatus(fiber.StatusOK)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusOK)
}
