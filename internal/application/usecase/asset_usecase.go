package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/fieldops-pro/internal/application/dto"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

// AssetUseCase historial de equipos instalados por cliente.
type AssetUseCase struct {
	repo         repository.AssetRepository
	customerRepo repository.CustomerRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(repo repository.AssetRepository, customerRepo repository.CustomerRepository) *AssetUseCase {
	return &AssetUseCase{repo: repo, customerRepo: customerRepo}
}

// Create registra un equipo en el domicilio de un cliente del tenant.
func (uc *AssetUseCase) Create(tenantID string, in dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if in.CustomerID == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByTenantAndID(tenantID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	asset := &entity.Asset{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		CustomerID:  in.CustomerID,
		Type:        in.Type,
		Make:        in.Make,
		Model:       in.Model,
		Serial:      in.Serial,
		InstallDate: in.InstallDate,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(asset); err != nil {
		return nil, err
	}
	return toAssetResponse(asset), nil
}

// ListByCustomer lista los equipos de un cliente.
func (uc *AssetUseCase) ListByCustomer(tenantID, customerID string) ([]*dto.AssetResponse, error) {
	list, err := uc.repo.ListByCustomer(tenantID, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AssetResponse, 0, len(list))
	for _, a := range list {
		out = append(out, toAssetResponse(a))
	}
	return out, nil
}

// Delete elimina un equipo.
func (uc *AssetUseCase) Delete(tenantID, id string) error {
	asset, err := uc.repo.GetByTenantAndID(tenantID, id)
	if err != nil {
		return err
	}
	if asset == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(tenantID, id)
}

func toAssetResponse(a *entity.Asset) *dto.AssetResponse {
	return &dto.AssetResponse{
		ID:          a.ID,
		CustomerID:  a.CustomerID,
		Type:        a.Type,
		Make:        a.Make,
		Model:       a.Model,
		Serial:      a.Serial,
		InstallDate: a.InstallDate,
	}
}
