package repositories

import (
	"context"
	"time"

	"binsight/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	AddWithMovement(ctx context.Context, item *models.Item, entry *models.MovementLog) error
	GetByName(ctx context.Context, itemName string) (*models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Latest(ctx context.Context, limit int) ([]*models.Item, error)
	List(ctx context.Context, limit, offset int) ([]*models.Item, error)
	Count(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
	CountExpiringWithin(ctx context.Context, from, until time.Time) (int64, error)
	ExpiringWithin(ctx context.Context, from, until time.Time) ([]*models.Item, error)
}

type inventoryRepo struct {
	db Database
}

func NewInventoryRepository(db Database) InventoryRepository {
	return &inventoryRepo{db: db}
}

const itemColumns = `id, item_id, item_name, category, dimensions, weight, fragility, expiry_date, current_location, entry_date`

// AddWithMovement inserts the item and its movement log entry in a single
// transaction; a failure in either write leaves nothing behind.
func (r *inventoryRepo) AddWithMovement(ctx context.Context, item *models.Item, entry *models.MovementLog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	itemQuery := `
		INSERT INTO inventory (id, item_id, item_name, category, dimensions, weight, fragility, expiry_date, current_location, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	if _, err := tx.Exec(ctx, itemQuery, item.ID, item.ItemID, item.ItemName, item.Category, item.Dimensions, item.Weight, item.Fragility, item.ExpiryDate, item.CurrentLocation, item.EntryDate); err != nil {
		return err
	}

	logQuery := `
		INSERT INTO movement_logs (id, item_id, timestamp, movement_type, location, order_id)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := tx.Exec(ctx, logQuery, entry.ID, entry.ItemID, entry.Timestamp, entry.MovementType, entry.Location, entry.OrderID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *inventoryRepo) GetByName(ctx context.Context, itemName string) (*models.Item, error) {
	item := &models.Item{}
	query := `
		SELECT ` + itemColumns + `
		FROM inventory
		WHERE item_name = $1
	`
	err := r.db.QueryRow(ctx, query, itemName).Scan(&item.ID, &item.ItemID, &item.ItemName, &item.Category, &item.Dimensions, &item.Weight, &item.Fragility, &item.ExpiryDate, &item.CurrentLocation, &item.EntryDate)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *inventoryRepo) Latest(ctx context.Context, limit int) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory
		ORDER BY entry_date DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) List(ctx context.Context, limit, offset int) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory
		ORDER BY entry_date DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *inventoryRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM inventory`).Scan(&count)
	return count, err
}

func (r *inventoryRepo) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) AS count
		FROM inventory
		GROUP BY category
		ORDER BY count DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]models.CategoryCount, 0)
	for rows.Next() {
		var cc models.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		categories = append(categories, cc)
	}
	return categories, rows.Err()
}

// CountExpiringWithin counts items with an expiry in [from, until): the lower
// bound is inclusive, the upper bound exclusive.
func (r *inventoryRepo) CountExpiringWithin(ctx context.Context, from, until time.Time) (int64, error) {
	var count int64
	query := `
		SELECT COUNT(*)
		FROM inventory
		WHERE expiry_date IS NOT NULL AND expiry_date >= $1 AND expiry_date < $2
	`
	err := r.db.QueryRow(ctx, query, from, until).Scan(&count)
	return count, err
}

func (r *inventoryRepo) ExpiringWithin(ctx context.Context, from, until time.Time) ([]*models.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM inventory
		WHERE expiry_date IS NOT NULL AND expiry_date >= $1 AND expiry_date < $2
		ORDER BY expiry_date ASC
	`
	rows, err := r.db.Query(ctx, query, from, until)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]*models.Item, error) {
	items := make([]*models.Item, 0)
	for rows.Next() {
		item := &models.Item{}
		if err := rows.Scan(&item.ID, &item.ItemID, &item.ItemName, &item.Category, &item.Dimensions, &item.Weight, &item.Fragility, &item.ExpiryDate, &item.CurrentLocation, &item.EntryDate); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
