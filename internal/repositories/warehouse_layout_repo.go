package repositories

import (
	"context"

	"binsight/internal/models"

	"github.com/jackc/pgx/v5"
)

type WarehouseLayoutRepository interface {
	ListBins(ctx context.Context) ([]*models.Bin, error)
	ListBinsByZone(ctx context.Context, zoneID string) ([]*models.Bin, error)
	GetBin(ctx context.Context, loc models.Location) (*models.Bin, error)
	DistinctZones(ctx context.Context) ([]string, error)
}

type warehouseLayoutRepo struct {
	db Database
}

func NewWarehouseLayoutRepository(db Database) WarehouseLayoutRepository {
	return &warehouseLayoutRepo{db: db}
}

const binColumns = `zone_id, rack_id, bin_id, capacity, current_utilization`

func (r *warehouseLayoutRepo) ListBins(ctx context.Context) ([]*models.Bin, error) {
	query := `
		SELECT ` + binColumns + `
		FROM warehouse_layout
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBins(rows)
}

func (r *warehouseLayoutRepo) ListBinsByZone(ctx context.Context, zoneID string) ([]*models.Bin, error) {
	query := `
		SELECT ` + binColumns + `
		FROM warehouse_layout
		WHERE zone_id = $1
	`
	rows, err := r.db.Query(ctx, query, zoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBins(rows)
}

func (r *warehouseLayoutRepo) GetBin(ctx context.Context, loc models.Location) (*models.Bin, error) {
	query := `
		SELECT ` + binColumns + `
		FROM warehouse_layout
		WHERE zone_id = $1 AND rack_id = $2 AND bin_id = $3
	`
	return scanBin(r.db.QueryRow(ctx, query, loc.ZoneID, loc.RackID, loc.BinID))
}

func (r *warehouseLayoutRepo) DistinctZones(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT zone_id
		FROM warehouse_layout
		ORDER BY zone_id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := make([]string, 0)
	for rows.Next() {
		var zone string
		if err := rows.Scan(&zone); err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}
	return zones, rows.Err()
}

func scanBin(row pgx.Row) (*models.Bin, error) {
	bin := &models.Bin{}
	var rawCapacity []byte
	var utilization *float64
	if err := row.Scan(&bin.ZoneID, &bin.RackID, &bin.BinID, &rawCapacity, &utilization); err != nil {
		return nil, err
	}
	bin.Capacity = models.ParseCapacity(rawCapacity)
	if utilization != nil {
		bin.CurrentUtilization = *utilization
	}
	return bin, nil
}

func scanBins(rows pgx.Rows) ([]*models.Bin, error) {
	bins := make([]*models.Bin, 0)
	for rows.Next() {
		bin, err := scanBin(rows)
		if err != nil {
			return nil, err
		}
		bins = append(bins, bin)
	}
	return bins, rows.Err()
}
