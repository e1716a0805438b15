package models

import (
	"time"

	"github.com/google/uuid"
)

// Item is a stocked inventory record. ID is the internal identifier used for
// deletes; ItemID is the business key referenced by movement logs.
type Item struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	ItemID          string     `json:"item_id" db:"item_id"`
	ItemName        string     `json:"item_name" db:"item_name"`
	Category        string     `json:"category" db:"category"`
	Dimensions      Dimensions `json:"dimensions" db:"dimensions"`
	Weight          float64    `json:"weight" db:"weight"`
	Fragility       bool       `json:"fragility" db:"fragility"`
	ExpiryDate      *time.Time `json:"expiry_date" db:"expiry_date"`
	CurrentLocation string     `json:"current_location" db:"current_location"`
	EntryDate       time.Time  `json:"entry_date" db:"entry_date"`
}

// Dimensions are an item's physical dimensions, stored as JSONB.
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
