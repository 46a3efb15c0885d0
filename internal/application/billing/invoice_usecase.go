package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// InvoiceUseCase CRUD simple de facturas (crear borrador vacío, listar, borrar).
type InvoiceUseCase struct {
	repo    repository.InvoiceRepository
	jobRepo repository.JobRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository, jobRepo repository.JobRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, jobRepo: jobRepo}
}

// Create crea una factura vacía en Draft para un trabajo.
func (uc *InvoiceUseCase) Create(tenantID string, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
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
		Amount:    decimal.Zero,
		Status:    entity.InvoiceStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(invoice); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura del tenant con sus líneas.
func (uc *InvoiceUseCase) GetByID(tenantID, id string) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return ToInvoiceResponse(invoice), nil
}

// List lista facturas del tenant con paginación.
func (uc *InvoiceUseCase) List(tenantID string, page dto.PageRequest) ([]*dto.InvoiceResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, ToInvoiceResponse(inv))
	}
	return out, nil
}

// Delete elimina una factura y sus líneas (líneas primero, FK).
func (uc *InvoiceUseCase) Delete(tenantID, id string) error {
	invoice, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}
