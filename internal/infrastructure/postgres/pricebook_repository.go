package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.PricebookRepository = (*PricebookRepo)(nil)

// PricebookRepo implementación del puerto PricebookRepository sobre PostgreSQL (usable con pool o tx).
type PricebookRepo struct {
	q Querier
}

// NewPricebookRepository construye el adaptador de persistencia para el pricebook. Pasar pool o tx (Querier).
func NewPricebookRepository(q Querier) *PricebookRepo {
	return &PricebookRepo{q: q}
}

const pricebookColumns = `id, tenant_id, name, price, item_type, category, created_at, updated_at`

func scanPricebookItem(row pgx.Row) (*entity.PricebookItem, error) {
	var it entity.PricebookItem
	err := row.Scan(&it.ID, &it.TenantID, &it.Name, &it.Price, &it.Type, &it.Category, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// Create persiste un ítem del pricebook.
func (r *PricebookRepo) Create(item *entity.PricebookItem) error {
	query := `
		INSERT INTO pricebook_items (` + pricebookColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.TenantID, item.Name, item.Price, item.Type, item.Category,
		item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pricebook item: %w", err)
	}
	return nil
}

// GetByTenantAndID obtiene un ítem del pricebook (consulta en vivo al facturar).
func (r *PricebookRepo) GetByTenantAndID(tenantID, id string) (*entity.PricebookItem, error) {
	query := `SELECT ` + pricebookColumns + ` FROM pricebook_items WHERE tenant_id = $1 AND id = $2`
	it, err := scanPricebookItem(r.q.QueryRow(context.Background(), query, tenantID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pricebook item: %w", err)
	}
	return it, nil
}

// ListByTenant lista el pricebook con filtros opcionales por tipo y categoría.
func (r *PricebookRepo) ListByTenant(tenantID, itemType, category string, limit, offset int) ([]*entity.PricebookItem, error) {
	query := `
		SELECT ` + pricebookColumns + `
		FROM pricebook_items
		WHERE tenant_id = $1
		  AND ($2 = '' OR item_type = $2)
		  AND ($3 = '' OR category = $3)
		ORDER BY category ASC, name ASC LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query, tenantID, itemType, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list pricebook: %w", err)
	}
	defer rows.Close()

	items := []*entity.PricebookItem{}
	for rows.Next() {
		it, err := scanPricebookItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pricebook item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SearchByTenant busca ítems por nombre o categoría (ILIKE).
func (r *PricebookRepo) SearchByTenant(tenantID, q string, limit int) ([]*entity.PricebookItem, error) {
	query := `
		SELECT ` + pricebookColumns + `
		FROM pricebook_items
		WHERE tenant_id = $1 AND (name ILIKE $2 OR category ILIKE $2)
		ORDER BY name ASC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, "%"+q+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search pricebook: %w", err)
	}
	defer rows.Close()

	items := []*entity.PricebookItem{}
	for rows.Next() {
		it, err := scanPricebookItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pricebook item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Update actualiza un ítem del pricebook.
func (r *PricebookRepo) Update(item *entity.PricebookItem) error {
	query := `
		UPDATE pricebook_items SET name = $3, price = $4, item_type = $5, category = $6, updated_at = $7
		WHERE tenant_id = $1 AND id = $2`
	_, err := r.q.Exec(context.Background(), query,
		item.TenantID, item.ID, item.Name, item.Price, item.Type, item.Category, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update pricebook item: %w", err)
	}
	return nil
}

// Delete elimina un ítem del pricebook (las líneas de factura ya emitidas conservan su precio copiado).
func (r *PricebookRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM pricebook_items WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete pricebook item: %w", err)
	}
	return nil
}
