package repository

import "github.com/tu-usuario/fieldops-pro/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice e InvoiceItem.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByTenantAndID(tenantID, id string) (*entity.Invoice, error)
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Invoice, error)
	ListItems(invoiceID string) ([]*entity.InvoiceItem, error)
	UpdateStatus(tenantID, id, status string) error
	Delete(tenantID, id string) error
	// DeleteByCustomer elimina items y cabeceras de las facturas cuyos jobs
	// pertenecen al cliente, en ese orden (los FKs del store no cascadean).
	DeleteByCustomer(tenantID, customerID string) error
}
