package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// AssetRepository define el puerto de persistencia para Asset (historial de equipos).
type AssetRepository interface {
	Create(asset *entity.Asset) error
	GetByTenantAndID(tenantID, id string) (*entity.Asset, error)
	ListByCustomer(tenantID, customerID string) ([]*entity.Asset, error)
	Delete(tenantID, id string) error
	DeleteByCustomer(tenantID, customerID string) error
}
