package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// PricebookRepository define el puerto de persistencia para PricebookItem.
type PricebookRepository interface {
	Create(item *entity.PricebookItem) error
	GetByTenantAndID(tenantID, id string) (*entity.PricebookItem, error)
	ListByTenant(tenantID, itemType, category string, limit, offset int) ([]*entity.PricebookItem, error)
	SearchByTenant(tenantID, q string, limit int) ([]*entity.PricebookItem, error)
	Update(item *entity.PricebookItem) error
	Delete(tenantID, id string) error
}
