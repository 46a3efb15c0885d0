package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/fieldops-pro/internal/application/auth"
	"github.com/tu-usuario/fieldops-pro/internal/application/billing"
	"github.com/tu-usuario/fieldops-pro/internal/application/usecase"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ auth.RegisterTxRunner = (*TxRunner)(nil)
var _ usecase.CascadeTxRunner = (*TxRunner)(nil)
var _ billing.BillingTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunRegister inicia una transacción con repos de tenant y usuario (registro atómico:
// el tenant no debe quedar huérfano si falla el insert del admin).
func (r *TxRunner) RunRegister(ctx context.Context, fn func(
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewTenantRepository(tx), NewUserRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCustomerCascade inicia una transacción para el borrado en cascada de un cliente:
// facturas, trabajos y equipos caen junto con el cliente o no cae nada.
func (r *TxRunner) RunCustomerCascade(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	jobRepo repository.JobRepository,
	assetRepo repository.AssetRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx), NewJobRepository(tx), NewAssetRepository(tx), NewCustomerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBilling inicia una transacción con repos de factura y pricebook (generación de factura:
// cabecera e items se insertan juntos).
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	pricebookRepo repository.PricebookRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewInvoiceRepository(tx), NewPricebookRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
