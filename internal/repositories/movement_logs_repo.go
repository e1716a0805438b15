package repositories

import (
	"context"

	"binsight/internal/models"
)

// MovementLogsRepository reads the append-only movement history. Writes go
// through InventoryRepository.AddWithMovement so they share the item's
// transaction.
type MovementLogsRepository interface {
	RecentByItem(ctx context.Context, itemID string, limit int) ([]*models.MovementLog, error)
}

type movementLogsRepo struct {
	db Database
}

func NewMovementLogsRepository(db Database) MovementLogsRepository {
	return &movementLogsRepo{db: db}
}

func (r *movementLogsRepo) RecentByItem(ctx context.Context, itemID string, limit int) ([]*models.MovementLog, error) {
	query := `
		SELECT id, item_id, timestamp, movement_type, location, order_id
		FROM movement_logs
		WHERE item_id = $1
		ORDER BY timestamp DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, itemID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*models.MovementLog, 0)
	for rows.Next() {
		entry := &models.MovementLog{}
		if err := rows.Scan(&entry.ID, &entry.ItemID, &entry.Timestamp, &entry.MovementType, &entry.Location, &entry.OrderID); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
