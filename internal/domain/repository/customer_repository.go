package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByTenantAndID(tenantID, id string) (*entity.Customer, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error)
	SearchByTenant(tenantID, q string, limit int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(tenantID, id string) error
}
