package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/fieldops-pro/internal/domain/entity"
	"github.com/tu-usuario/fieldops-pro/internal/domain/repository"
)

var _ repository.AssetRepository = (*AssetRepo)(nil)

// AssetRepo implementación del puerto AssetRepository sobre PostgreSQL (usable con pool o tx).
type AssetRepo struct {
	q Querier
}

// NewAssetRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewAssetRepository(q Querier) *AssetRepo {
	return &AssetRepo{q: q}
}

const assetColumns = `id, tenant_id, customer_id, asset_type, make, model, serial, install_date, created_at`

// Create persiste un equipo instalado.
func (r *AssetRepo) Create(asset *entity.Asset) error {
	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		asset.ID, asset.TenantID, asset.CustomerID, asset.Type, asset.Make,
		asset.Model, asset.Serial, asset.InstallDate, asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}
	return nil
}

// GetByTenantAndID obtiene un equipo por tenant e ID.
func (r *AssetRepo) GetByTenantAndID(tenantID, id string) (*entity.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE tenant_id = $1 AND id = $2`
	var a entity.Asset
	err := r.q.QueryRow(context.Background(), query, tenantID, id).Scan(
		&a.ID, &a.TenantID, &a.CustomerID, &a.Type, &a.Make, &a.Model,
		&a.Serial, &a.InstallDate, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asset: %w", err)
	}
	return &a, nil
}

// ListByCustomer lista los equipos instalados en el domicilio de un cliente.
func (r *AssetRepo) ListByCustomer(tenantID, customerID string) ([]*entity.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets WHERE tenant_id = $1 AND customer_id = $2 ORDER BY install_date DESC`
	rows, err := r.q.Query(context.Background(), query, tenantID, customerID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	assets := []*entity.Asset{}
	for rows.Next() {
		var a entity.Asset
		err := rows.Scan(&a.ID, &a.TenantID, &a.CustomerID, &a.Type, &a.Make, &a.Model,
			&a.Serial, &a.InstallDate, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, &a)
	}
	return assets, rows.Err()
}

// Delete elimina un equipo.
func (r *AssetRepo) Delete(tenantID, id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM assets WHERE tenant_id = $1 AND id = $2`, tenantID, id)
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todos los equipos de un cliente (cascada de borrado).
func (r *AssetRepo) DeleteByCustomer(tenantID, customerID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM assets WHERE tenant_id = $1 AND customer_id = $2`, tenantID, customerID)
	if err != nil {
		return fmt.Errorf("delete assets by customer: %w", err)
	}
	return nil
}
