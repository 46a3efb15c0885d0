package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// Línea por defecto cuando la petición no trae items: visita de servicio plana.
// Es un placeholder del producto original, no una regla de negocio a generalizar.
var defaultServiceCallPrice = decimal.NewFromInt(75)

const defaultServiceCallDescription = "Service Call"

// GenerateInvoiceUseCase genera una factura desde el pricebook: resuelve el
// precio vigente de cada ítem en el momento de la generación (no se congela
// antes) y persiste cabecera + líneas en una sola transacción.
type GenerateInvoiceUseCase struct {
	txRunner      BillingTxRunner
	jobRepo       repository.JobRepository
	invoiceRepo   repository.InvoiceRepository
	pricebookRepo repository.PricebookRepository
}

// NewGenerateInvoiceUseCase construye el caso de uso.
func NewGenerateInvoiceUseCase(
	txRunner BillingTxRunner,
	jobRepo repository.JobRepository,
	invoiceRepo repository.InvoiceRepository,
	pricebookRepo repository.PricebookRepository,
) *GenerateInvoiceUseCase {
	return &GenerateInvoiceUseCase{
		txRunner:      txRunner,
		jobRepo:       jobRepo,
		invoiceRepo:   invoiceRepo,
		pricebookRepo: pricebookRepo,
	}
}

// Generate crea la factura del trabajo. amount = Σ(unit_price × quantity).
func (uc *GenerateInvoiceUseCase) Generate(ctx context.Context, tenantID string, in dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.JobID == "" {
		return nil, domain.ErrInvalidInput
	}
	job, err := uc.jobRepo.GetByTenantAndID(tenantID, in.JobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	invoice := &entity.Invoice{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		JobID:     job.ID,
		Status:    entity.InvoiceStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, pricebookRepo repository.PricebookRepository) error {
		items, err := uc.resolveItems(pricebookRepo, tenantID, invoice.ID, in.Items)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Total)
		}
		invoice.Amount = total
		invoice.Items = items

		if err := invoiceRepo.Create(invoice); err != nil {
			return err
		}
		for _, it := range items {
			if err := invoiceRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// resolveItems consulta el precio vigente de cada ítem. Sin items: línea única
// "Service Call" al precio fijo por defecto.
func (uc *GenerateInvoiceUseCase) resolveItems(
	pricebookRepo repository.PricebookRepository,
	tenantID, invoiceID string,
	in []dto.GenerateInvoiceItem,
) ([]*entity.InvoiceItem, error) {
	if len(in) == 0 {
		one := decimal.NewFromInt(1)
		return []*entity.InvoiceItem{{
			ID:          uuid.New().String(),
			InvoiceID:   invoiceID,
			Description: defaultServiceCallDescription,
			Quantity:    one,
			UnitPrice:   defaultServiceCallPrice,
			Total:       defaultServiceCallPrice,
			Position:    0,
		}}, nil
	}

	items := make([]*entity.InvoiceItem, 0, len(in))
	for i, line := range in {
		if line.PricebookItemID == "" || !line.Quantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		pbItem, err := pricebookRepo.GetByTenantAndID(tenantID, line.PricebookItemID)
		if err != nil {
			return nil, err
		}
		if pbItem == nil {
			return nil, domain.ErrNotFound
		}
		items = append(items, &entity.InvoiceItem{
			ID:              uuid.New().String(),
			InvoiceID:       invoiceID,
			PricebookItemID: pbItem.ID,
			Description:     pbItem.Name,
			Quantity:        line.Quantity,
			UnitPrice:       pbItem.Price,
			Total:           pbItem.Price.Mul(line.Quantity),
			Position:        i,
		})
	}
	return items, nil
}

// ToInvoiceResponse mapea la entidad a su DTO con las líneas en orden.
func ToInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			ID:              it.ID,
			PricebookItemID: it.PricebookItemID,
			Description:     it.Description,
			Quantity:        it.Quantity,
			UnitPrice:       it.UnitPrice,
			Total:           it.Total,
		})
	}
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		TenantID:  inv.TenantID,
		JobID:     inv.JobID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt,
		Items:     items,
	}
}
