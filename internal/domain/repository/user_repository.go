package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
// Toda consulta de listado exige tenantID: es la única invariante de acceso del sistema.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByEmailAndTenant(email, tenantID string) (*entity.User, error)
	ListByTenantAndRole(tenantID, role string) ([]*entity.User, error)
	Update(user *entity.User) error
}
