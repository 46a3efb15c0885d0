package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// PaymentUseCase crea links de pago para facturas existentes.
// Sin reintentos: la llamada a la pasarela funciona o la petición falla.
type PaymentUseCase struct {
	invoiceRepo repository.InvoiceRepository
	providers   map[string]PaymentProvider // por nombre: stripe, paypal
}

// NewPaymentUseCase construye el caso de uso con los providers disponibles.
func NewPaymentUseCase(invoiceRepo repository.InvoiceRepository, providers ...PaymentProvider) *PaymentUseCase {
	m := make(map[string]PaymentProvider, len(providers))
	for _, p := range providers {
		m[p.Name()] = p
	}
	return &PaymentUseCase{invoiceRepo: invoiceRepo, providers: m}
}

// CreateLink crea el link de pago de la factura en la pasarela indicada.
func (uc *PaymentUseCase) CreateLink(ctx context.Context, tenantID, provider string, in dto.PaymentLinkRequest) (*dto.PaymentLinkResponse, error) {
	p, ok := uc.providers[provider]
	if !ok {
		return nil, fmt.Errorf("%w: pasarela desconocida %q", domain.ErrInvalidInput, provider)
	}
	if in.InvoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByTenantAndID(tenantID, in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}

	url, mocked, err := p.CreatePaymentLink(ctx, invoice.ID, invoice.Amount)
	if err != nil {
		return nil, fmt.Errorf("pago %s: %w", provider, err)
	}
	return &dto.PaymentLinkResponse{
		InvoiceID: invoice.ID,
		Provider:  provider,
		URL:       url,
		Mocked:    mocked,
	}, nil
}
