package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de una factura.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, tenant_id, job_id, amount, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.TenantID, invoice.JobID, invoice.Amount, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(item *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (id, invoice_id, pricebook_item_id, description, quantity, unit_price, total, position)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.InvoiceID, item.PricebookItemID, item.Description,
		item.Quantity, item.UnitPrice, item.Total, item.Position,
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// GetByTenantAndID obtiene una factura con sus líneas (ordenadas por position).
func (r *InvoiceRepo) GetByTenantAndID(tenantID, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, tenant_id, job_id, amount, status, created_at, updated_at
		FROM invoices WHERE tenant_id = $1 AND id = $2`
	var inv entity.Invoice
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&inv.ID, &inv.TenantID, &inv.JobID, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	items, err := r.ListItems(inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

// ListByTenant lista facturas del tenant (sin líneas) con paginación.
func (r *InvoiceRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, tenant_id, job_id, amount, status, created_at, updated_at
		FROM invoices WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	invoices := []*entity.Invoice{}
	for rows.Next() {
		var inv entity.Invoice
		err := rows.Scan(&inv.ID, &inv.TenantID, &inv.JobID, &inv.Amount, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		invoices = append(invoices, &inv)
	}
	return invoices, rows.Err()
}

// ListItems lista las líneas de una factura ordenadas por position.
func (r *InvoiceRepo) ListItems(invoiceID string) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, COALESCE(pricebook_item_id, ''), description, quantity, unit_price, total, position
		FROM invoice_items WHERE invoice_id = $1 ORDER BY position ASC`
	rows, err := r.q.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()

	items := []*entity.InvoiceItem{}
	for rows.Next() {
		var it entity.InvoiceItem
		err := rows.Scan(&it.ID, &it.InvoiceID, &it.PricebookItemID, &it.Description,
			&it.Quantity, &it.UnitPrice, &it.Total, &it.Position)
		if err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateStatus actualiza solo el estado de la factura (Draft/Paid/Void).
func (r *InvoiceRepo) UpdateStatus(tenantID, id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE invoices SET status = $3, updated_at = now() WHERE tenant_id = $1 AND id = $2`,
		tenantID, id, status,
	)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return nil
}

// Delete elimina una factura y sus líneas.
func (r *InvoiceRepo) Delete(tenantID, id string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx,
		`DELETE FROM invoice_items WHERE invoice_id IN (SELECT id FROM invoices WHERE tenant_id = $1 AND id = $2)`,
		tenantID, id); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}
	if _, err := r.q.Exec(ctx,
		`DELETE FROM invoices WHERE tenant_id = $1 AND id = $2`, tenantID, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina líneas y cabeceras de las facturas de los trabajos
// del cliente, en ese orden (los FKs del store no cascadean).
func (r *InvoiceRepo) DeleteByCustomer(tenantID, customerID string) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `
		DELETE FROM invoice_items WHERE invoice_id IN (
			SELECT i.id FROM invoices i
			JOIN jobs j ON j.id = i.job_id
			WHERE i.tenant_id = $1 AND j.customer_id = $2
		)`, tenantID, customerID); err != nil {
		return fmt.Errorf("delete invoice items by customer: %w", err)
	}
	if _, err := r.q.Exec(ctx, `
		DELETE FROM invoices WHERE tenant_id = $1 AND job_id IN (
			SELECT id FROM jobs WHERE tenant_id = $1 AND customer_id = $2
		)`, tenantID, customerID); err != nil {
		return fmt.Errorf("delete invoices by customer: %w", err)
	}
	return nil
}
