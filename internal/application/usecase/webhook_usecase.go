package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// Eventos de suscripción que maneja el webhook (LemonSqueezy).
const (
	webhookEventCreated   = "subscription_created"
	webhookEventResumed   = "subscription_resumed"
	webhookEventPastDue   = "subscription_past_due"
	webhookEventCancelled = "subscription_cancelled"
	webhookEventExpired   = "subscription_expired"
)

// WebhookUseCase verifica la firma HMAC-SHA256 del cuerpo crudo y aplica el
// evento de suscripción al tenant correspondiente.
type WebhookUseCase struct {
	tenantRepo repository.TenantRepository
	secret     string
}

// NewWebhookUseCase construye el caso de uso.
func NewWebhookUseCase(tenantRepo repository.TenantRepository, secret string) *WebhookUseCase {
	return &WebhookUseCase{tenantRepo: tenantRepo, secret: secret}
}

// webhookPayload forma mínima del evento entrante.
type webhookPayload struct {
	Meta struct {
		EventName  string `json:"event_name"`
		CustomData struct {
			TenantID string `json:"tenant_id"`
		} `json:"custom_data"`
	} `json:"meta"`
}

// VerifySignature compara en tiempo constante la firma HMAC-SHA256 (hex) del
// cuerpo CRUDO contra el header X-Signature. El cuerpo no debe re-serializarse
// antes de firmar: cualquier cambio de bytes invalida la firma.
func (uc *WebhookUseCase) VerifySignature(rawBody []byte, signature string) bool {
	if uc.secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(uc.secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// Apply procesa el evento: mapea event_name a un estado de suscripción y lo
// persiste en el tenant indicado por custom_data.tenant_id.
func (uc *WebhookUseCase) Apply(rawBody []byte) error {
	var payload webhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return fmt.Errorf("%w: cuerpo del webhook ilegible", domain.ErrInvalidInput)
	}
	tenantID := payload.Meta.CustomData.TenantID
	if tenantID == "" {
		return fmt.Errorf("%w: custom_data.tenant_id ausente", domain.ErrInvalidInput)
	}

	var status string
	switch payload.Meta.EventName {
	case webhookEventCreated, webhookEventResumed:
		status = entity.SubscriptionActive
	case webhookEventPastDue:
		status = entity.SubscriptionPastDue
	case webhookEventCancelled, webhookEventExpired:
		status = entity.SubscriptionCanceled
	default:
		// Eventos no mapeados se aceptan sin efecto (el proveedor reintenta los 4xx/5xx).
		return nil
	}

	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil {
		return err
	}
	if tenant == nil {
		return domain.ErrNotFound
	}
	return uc.tenantRepo.UpdateSubscriptionStatus(tenantID, status)
}
