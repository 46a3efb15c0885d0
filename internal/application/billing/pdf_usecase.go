package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// PDFUseCase genera el documento (PDF) de una factura.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	tenantRepo   repository.TenantRepository
	customerRepo repository.CustomerRepository
	jobRepo      repository.JobRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	tenantRepo repository.TenantRepository,
	customerRepo repository.CustomerRepository,
	jobRepo repository.JobRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		tenantRepo:   tenantRepo,
		customerRepo: customerRepo,
		jobRepo:      jobRepo,
		generator:    generator,
	}
}

// DownloadInvoicePDF carga factura, tenant, trabajo y cliente, y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe para ese tenant.
func (uc *PDFUseCase) DownloadInvoicePDF(
	ctx context.Context,
	tenantID, invoiceID string,
) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByTenantAndID(tenantID, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	tenant, err := uc.tenantRepo.GetByID(tenantID)
	if err != nil || tenant == nil {
		return nil, "", fmt.Errorf("pdf: obtener tenant: %w", err)
	}

	job, err := uc.jobRepo.GetByTenantAndID(tenantID, inv.JobID)
	if err != nil || job == nil {
		return nil, "", fmt.Errorf("pdf: obtener trabajo: %w", err)
	}

	customer, err := uc.customerRepo.GetByTenantAndID(tenantID, job.CustomerID)
	if err != nil || customer == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}

	bytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, tenant, customer, job)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}

	return bytes, fmt.Sprintf("invoice-%s.pdf", inv.ID[:8]), nil
}
