package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	UpdateSubscriptionStatus(id, status string) error
	Delete(id string) error
}
