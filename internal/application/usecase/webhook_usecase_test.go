package usecase_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
)

type fakeTenantRepo struct {
	tenant        *entity.Tenant
	updatedID     string
	updatedStatus string
}

func (f *fakeTenantRepo) Create(*entity.Tenant) error { return nil }
func (f *fakeTenantRepo) GetByID(string) (*entity.Tenant, error) {
	return f.tenant, nil
}
func (f *fakeTenantRepo) UpdateSubscriptionStatus(id, status string) error {
	f.updatedID = id
	f.updatedStatus = status
	return nil
}
func (f *fakeTenantRepo) Delete(string) error { return nil }

const webhookSecret = "secreto-de-firma-para-tests"

// sign firma el cuerpo igual que lo hace LemonSqueezy: HMAC-SHA256 en hex.
func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func eventBody(eventName, tenantID string) []byte {
	return []byte(fmt.Sprintf(
		`{"meta":{"event_name":%q,"custom_data":{"tenant_id":%q}}}`,
		eventName, tenantID,
	))
}

// ──────────────────────────────────────────────────────────────────────────────
// VerifySignature
// ──────────────────────────────────────────────────────────────────────────────

func TestVerifySignature_FirmaValida(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)
	body := eventBody("subscription_created", "tenant-1")

	assert.True(t, uc.VerifySignature(body, sign(webhookSecret, body)))
}

func TestVerifySignature_FirmaIncorrecta(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)
	body := eventBody("subscription_created", "tenant-1")

	assert.False(t, uc.VerifySignature(body, sign("otro-secreto", body)),
		"firma con otro secreto debe rechazarse")
}

func TestVerifySignature_CuerpoAlterado(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)
	body := eventBody("subscription_created", "tenant-1")
	sig := sign(webhookSecret, body)

	// Un solo byte distinto en el cuerpo invalida la firma.
	altered := append([]byte{}, body...)
	altered[len(altered)-2] = 'X'
	assert.False(t, uc.VerifySignature(altered, sig))
}

func TestVerifySignature_SinFirmaOSinSecreto(t *testing.T) {
	body := eventBody("subscription_created", "tenant-1")

	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)
	assert.False(t, uc.VerifySignature(body, ""), "header X-Signature vacío debe rechazarse")

	sinSecreto := usecase.NewWebhookUseCase(&fakeTenantRepo{}, "")
	assert.False(t, sinSecreto.VerifySignature(body, sign("", body)),
		"sin secreto configurado todo webhook se rechaza")
}

// ──────────────────────────────────────────────────────────────────────────────
// Apply — mapeo evento → estado de suscripción
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_MapeaEventosAEstados(t *testing.T) {
	cases := []struct {
		event  string
		status string
	}{
		{"subscription_created", entity.SubscriptionActive},
		{"subscription_resumed", entity.SubscriptionActive},
		{"subscription_past_due", entity.SubscriptionPastDue},
		{"subscription_cancelled", entity.SubscriptionCanceled},
		{"subscription_expired", entity.SubscriptionCanceled},
	}
	for _, tc := range cases {
		t.Run(tc.event, func(t *testing.T) {
			repo := &fakeTenantRepo{tenant: &entity.Tenant{ID: "tenant-1"}}
			uc := usecase.NewWebhookUseCase(repo, webhookSecret)

			require.NoError(t, uc.Apply(eventBody(tc.event, "tenant-1")))
			assert.Equal(t, "tenant-1", repo.updatedID)
			assert.Equal(t, tc.status, repo.updatedStatus)
		})
	}
}

func TestApply_EventoNoMapeado_SeAceptaSinEfecto(t *testing.T) {
	repo := &fakeTenantRepo{tenant: &entity.Tenant{ID: "tenant-1"}}
	uc := usecase.NewWebhookUseCase(repo, webhookSecret)

	require.NoError(t, uc.Apply(eventBody("subscription_payment_success", "tenant-1")))
	assert.Empty(t, repo.updatedStatus, "evento no mapeado no debe tocar el tenant")
}

func TestApply_CuerpoIlegible_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)

	err := uc.Apply([]byte("esto no es json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_SinTenantID_RetornaErrInvalidInput(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{}, webhookSecret)

	err := uc.Apply([]byte(`{"meta":{"event_name":"subscription_created","custom_data":{}}}`))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_TenantInexistente_RetornaErrNotFound(t *testing.T) {
	uc := usecase.NewWebhookUseCase(&fakeTenantRepo{tenant: nil}, webhookSecret)

	err := uc.Apply(eventBody("subscription_created", "tenant-fantasma"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
