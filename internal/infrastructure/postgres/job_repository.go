package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.JobRepository = (*JobRepo)(nil)

// JobRepo implementación del puerto JobRepository sobre PostgreSQL (usable con pool o tx).
// Todas las lecturas hacen JOIN con customers: el tablero y el canal realtime
// siempre necesitan el cliente anidado.
type JobRepo struct {
	q Querier
}

// NewJobRepository construye el adaptador de persistencia para trabajos. Pasar pool o tx (Querier).
func NewJobRepository(q Querier) *JobRepo {
	return &JobRepo{q: q}
}

const jobSelect = `
	SELECT j.id, j.tenant_id, j.customer_id, j.technician_id, j.status, j.scheduled_start,
	       j.description, j.created_at, j.updated_at,
	       c.id, c.tenant_id, c.name, c.address, c.phone, c.email, c.lat, c.lng, c.created_at, c.updated_at
	FROM jobs j
	JOIN customers c ON c.id = j.customer_id`

func scanJobWithCustomer(row pgx.Row) (*entity.Job, error) {
	var j entity.Job
	var c entity.Customer
	err := row.Scan(
		&j.ID, &j.TenantID, &j.CustomerID, &j.TechnicianID, &j.Status, &j.ScheduledStart,
		&j.Description, &j.CreatedAt, &j.UpdatedAt,
		&c.ID, &c.TenantID, &c.Name, &c.Address, &c.Phone, &c.Email, &c.Lat, &c.Lng,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Customer = &c
	return &j, nil
}

// Create persiste un nuevo trabajo.
func (r *JobRepo) Create(job *entity.Job) error {
	query := `
		INSERT INTO jobs (id, tenant_id, customer_id, technician_id, status, scheduled_start, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		job.ID, job.TenantID, job.CustomerID, job.TechnicianID, job.Status,
		job.ScheduledStart, job.Description, job.CreatedAt, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// GetByTenantAndID obtiene un trabajo con su cliente anidado.
func (r *JobRepo) GetByTenantAndID(tenantID, id string) (*entity.Job, error) {
	query := jobSelect + ` WHERE j.tenant_id = $1 AND j.id = $2`
	j, err := scanJobWithCustomer(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

// ListByTenant lista trabajos del tenant (cliente anidado) con paginación.
func (r *JobRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Job, error) {
	query := jobSelect + ` WHERE j.tenant_id = $1 ORDER BY j.scheduled_start DESC LIMIT $2 OFFSET $3`
	return r.queryJobs(query, tenantID, limit, offset)
}

// ListByTenantAndCustomer lista los trabajos de un cliente.
func (r *JobRepo) ListByTenantAndCustomer(tenantID, customerID string) ([]*entity.Job, error) {
	query := jobSelect + ` WHERE j.tenant_id = $1 AND j.customer_id = $2 ORDER BY j.scheduled_start DESC`
	return r.queryJobs(query, tenantID, customerID)
}

// SearchByTenant busca trabajos por descripción o nombre del cliente (ILIKE).
func (r *JobRepo) SearchByTenant(tenantID, q string, limit int) ([]*entity.Job, error) {
	query := jobSelect + `
		WHERE j.tenant_id = $1 AND (j.description ILIKE $2 OR c.name ILIKE $2)
		ORDER BY j.scheduled_start DESC LIMIT $3`
	return r.queryJobs(query, tenantID, "%"+q+"%", limit)
}

func (r *JobRepo) queryJobs(query string, args ...any) ([]*entity.Job, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*entity.Job{}
	for rows.Next() {
		j, err := scanJobWithCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// Update actualiza un trabajo existente.
func (r *JobRepo) Update(job *entity.Job) error {
	query := `
		UPDATE jobs SET customer_id = $3, technician_id = $4, status = $5, scheduled_start = $6, description = $7, updated_at = $8
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		job.TenantID, job.ID, job.CustomerID, job.TechnicianID, job.Status,
		job.ScheduledStart, job.Description, job.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

// UpdateStatus actualiza solo el estado (drag-and-drop del tablero).
func (r *JobRepo) UpdateStatus(tenantID, id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE jobs SET status = $3, updated_at = now() WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	return nil
}

// Delete elimina un trabajo.
func (r *JobRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM jobs WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todos los trabajos de un cliente (cascada de borrado).
func (r *JobRepo) DeleteByCustomer(tenantID, customerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM jobs WHERE tenant_id = $1 AND customer_id = $2`, tenantID, customerID)
	if err != nil {
		return fmt.Errorf("delete jobs by customer: %w", err)
	}
	return nil
}
