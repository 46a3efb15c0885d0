package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// JobRepository define el puerto de persistencia para Job.
// Los Get/List cargan el Customer anidado (JOIN) porque el tablero y el canal
// realtime siempre lo necesitan.
type JobRepository interface {
	Create(job *entity.Job) error
	GetByTenantAndID(tenantID, id string) (*entity.Job, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Job, error)
	ListByTenantAndCustomer(tenantID, customerID string) ([]*entity.Job, error)
	SearchByTenant(tenantID, q string, limit int) ([]*entity.Job, error)
	Update(job *entity.Job) error
	UpdateStatus(tenantID, id, status string) error
	Delete(tenantID, id string) error
	DeleteByCustomer(tenantID, customerID string) error
}
