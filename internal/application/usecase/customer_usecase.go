package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/application/ports"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// CascadeTxRunner ejecuta el borrado en cascada de un cliente en una transacción.
// El orden lo impone la integridad referencial: InvoiceItem → Invoice → Job →
// Asset → Customer (los FKs del store no cascadean solos).
type CascadeTxRunner interface {
	RunCustomerCascade(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		jobRepo repository.JobRepository,
		assetRepo repository.AssetRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	geocoder ports.Geocoder
	txRunner CascadeTxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, geocoder ports.Geocoder, txRunner CascadeTxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, geocoder: geocoder, txRunner: txRunner}
}

// Create crea un cliente asignando lat/lng con el geocoder (simulado: jitter
// acotado alrededor del centro de ciudad, no geocodificación real).
func (uc *CustomerUseCase) Create(tenantID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Address == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := uc.geocoder.Geocode(in.Address)
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Lat:       &p.Lat,
		Lng:       &p.Lng,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// GetByID obtiene un cliente del tenant.
func (uc *CustomerUseCase) GetByID(tenantID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return ToCustomerResponse(customer), nil
}

// List lista clientes del tenant con paginación.
func (uc *CustomerUseCase) List(tenantID string, page dto.PageRequest) ([]*dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByTenant(tenantID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, ToCustomerResponse(c))
	}
	return out, nil
}

// Update edita un cliente. Si cambia la dirección se vuelve a geocodificar.
func (uc *CustomerUseCase) Update(tenantID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		customer.Name = *in.Name
	}
	if in.Address != nil && *in.Address != customer.Address {
		customer.Address = *in.Address
		p := uc.geocoder.Geocode(customer.Address)
		customer.Lat = &p.Lat
		customer.Lng = &p.Lng
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return ToCustomerResponse(customer), nil
}

// Delete elimina un cliente y todo lo que cuelga de él, en orden de dependencia
// y dentro de una sola transacción: facturas (con sus líneas), trabajos y
// equipos primero, el cliente al final. No quedan huérfanos.
func (uc *CustomerUseCase) Delete(ctx context.Context, tenantID, id string) error {
	existing, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunCustomerCascade(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		jobRepo repository.JobRepository,
		assetRepo repository.AssetRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if err := invoiceRepo.DeleteByCustomer(tenantID, id); err != nil {
			return err
		}
		if err := jobRepo.DeleteByCustomer(tenantID, id); err != nil {
			return err
		}
		if err := assetRepo.DeleteByCustomer(tenantID, id); err != nil {
			return err
		}
		return customerRepo.Delete(tenantID, id)
	})
}

// ToCustomerResponse mapea la entidad a su DTO.
func ToCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		TenantID:  c.TenantID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		Lat:       c.Lat,
		Lng:       c.Lng,
		CreatedAt: c.CreatedAt,
	}
}
