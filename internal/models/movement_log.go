package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MovementTypeIn  = "in"
	MovementTypeOut = "out"

	// SystemOrderID marks movement entries generated by the service itself
	// rather than by a customer order.
	SystemOrderID = "SYSTEM_ADD"
)

// MovementLog is one append-only entry in an item's movement history. ItemID
// is the item business key, not the internal identifier.
type MovementLog struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ItemID       string    `json:"item_id" db:"item_id"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
	MovementType string    `json:"movement_type" db:"movement_type"`
	Location     string    `json:"location" db:"location"`
	OrderID      string    `json:"order_id" db:"order_id"`
}
