package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador de persistencia para clientes. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, tenant_id, name, address, phone, email, lat, lng, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Address, &c.Phone, &c.Email,
		&c.Lat, &c.Lng, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.TenantID, customer.Name, customer.Address, customer.Phone,
		customer.Email, customer.Lat, customer.Lng, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByTenantAndID obtiene un cliente por tenant e ID.
func (r *CustomerRepo) GetByTenantAndID(tenantID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE tenant_id = $1 AND id = $2`
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByTenant lista clientes del tenant con paginación.
func (r *CustomerRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []*entity.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// SearchByTenant busca clientes por nombre, dirección o teléfono (ILIKE, case-insensitive).
func (r *CustomerRepo) SearchByTenant(tenantID, q string, limit int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND (name ILIKE $2 OR address ILIKE $2 OR phone ILIKE $2)
		ORDER BY name ASC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	defer rows.Close()

	customers := []*entity.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// Update actualiza un cliente existente (incluye lat/lng si se re-geocodificó).
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, address = $4, phone = $5, email = $6, lat = $7, lng = $8, updated_at = $9
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		customer.TenantID, customer.ID, customer.Name, customer.Address, customer.Phone,
		customer.Email, customer.Lat, customer.Lng, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente (llamar dentro de la cascada: facturas, trabajos y equipos primero).
func (r *CustomerRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}
