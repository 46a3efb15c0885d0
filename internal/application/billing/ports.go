package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// BillingTxRunner ejecuta la generación de factura (cabecera + líneas) en una transacción.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		pricebookRepo repository.PricebookRepository,
	) error) error
}

// InvoicePDFGenerator renderiza el documento de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		tenant *entity.Tenant,
		customer *entity.Customer,
		job *entity.Job,
	) ([]byte, error)
}

// PaymentProvider crea un link de pago en una pasarela externa.
// mocked=true cuando la pasarela no está configurada (API key ausente) y el
// link devuelto es simulado — conveniencia de desarrollo, no resiliencia.
type PaymentProvider interface {
	Name() string
	CreatePaymentLink(ctx context.Context, invoiceID string, amount decimal.Decimal) (url string, mocked bool, err error)
}
