package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL (usable con pool o tx).
type TenantRepo struct {
	q Querier
}

// NewTenantRepository construye el adaptador de persistencia para tenants. Pasar pool o tx (Querier).
func NewTenantRepository(q Querier) *TenantRepo {
	return &TenantRepo{q: q}
}

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, subscription_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.SubscriptionStatus, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, subscription_status, created_at, updated_at
		FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.SubscriptionStatus, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// UpdateSubscriptionStatus actualiza solo el estado de suscripción (usado por el webhook de billing).
func (r *TenantRepo) UpdateSubscriptionStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE tenants SET subscription_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update tenant subscription: %w", err)
	}
	return nil
}

// Delete elimina un tenant (los datos de negocio deben borrarse antes).
func (r *TenantRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM tenants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tenant: %w", err)
	}
	return nil
}
