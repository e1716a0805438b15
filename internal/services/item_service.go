package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"binsight/internal/caching"
	"binsight/internal/models"
	"binsight/internal/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrItemNotFound signals a missing item for both lookup and delete.
var ErrItemNotFound = errors.New("item not found")

// ValidationError is a client error the handler maps to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing required field: " + field}
}

// requiredFields are checked in order so the first missing one is the one
// named in the error.
var requiredFields = []string{"item_id", "item_name", "category", "dimensions", "weight", "current_location"}

const movementHistoryLimit = 5

type ItemService interface {
	Lookup(ctx context.Context, itemName string) (*models.ItemDetails, error)
	Add(ctx context.Context, payload map[string]any) (*models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type itemService struct {
	inventoryRepo repositories.InventoryRepository
	layoutRepo    repositories.WarehouseLayoutRepository
	movementRepo  repositories.MovementLogsRepository
	cache         caching.CacheService
	now           func() time.Time
}

func NewItemService(inventoryRepo repositories.InventoryRepository, layoutRepo repositories.WarehouseLayoutRepository, movementRepo repositories.MovementLogsRepository, cache caching.CacheService) ItemService {
	return &itemService{
		inventoryRepo: inventoryRepo,
		layoutRepo:    layoutRepo,
		movementRepo:  movementRepo,
		cache:         cache,
		now:           time.Now,
	}
}

// Lookup resolves an item by exact name and enriches it with its bin record
// and up to 5 most recent movement entries. A location that matches no bin
// yields a null bin_details, not an error.
func (s *itemService) Lookup(ctx context.Context, itemName string) (*models.ItemDetails, error) {
	item, err := s.inventoryRepo.GetByName(ctx, itemName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	loc, err := models.ParseLocation(item.CurrentLocation)
	if err != nil {
		return nil, fmt.Errorf("item %s has malformed location: %w", item.ItemID, err)
	}

	bin, err := s.layoutRepo.GetBin(ctx, loc)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	history, err := s.movementRepo.RecentByItem(ctx, item.ItemID, movementHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &models.ItemDetails{
		Item:            *item,
		BinDetails:      bin,
		MovementHistory: history,
	}, nil
}

// Add validates and coerces the raw payload, then inserts the item together
// with its synthetic "in" movement entry in one transaction.
func (s *itemService) Add(ctx context.Context, payload map[string]any) (*models.Item, error) {
	for _, field := range requiredFields {
		if _, ok := payload[field]; !ok {
			return nil, missingField(field)
		}
	}

	dims, ok := payload["dimensions"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("dimensions must be an object")
	}
	length, err := toFloat(dims["length"])
	if err != nil {
		return nil, fmt.Errorf("invalid dimensions.length: %w", err)
	}
	width, err := toFloat(dims["width"])
	if err != nil {
		return nil, fmt.Errorf("invalid dimensions.width: %w", err)
	}
	height, err := toFloat(dims["height"])
	if err != nil {
		return nil, fmt.Errorf("invalid dimensions.height: %w", err)
	}

	weight, err := toFloat(payload["weight"])
	if err != nil {
		return nil, fmt.Errorf("invalid weight: %w", err)
	}

	location := toString(payload["current_location"])
	if _, err := models.ParseLocation(location); err != nil {
		return nil, &ValidationError{Field: "current_location", Message: err.Error()}
	}

	var expiry *time.Time
	if raw := toString(payload["expiry_date"]); raw != "" {
		parsed, err := parseISODate(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid expiry_date: %w", err)
		}
		expiry = &parsed
	}

	now := s.now()
	item := &models.Item{
		ID:              uuid.New(),
		ItemID:          toString(payload["item_id"]),
		ItemName:        toString(payload["item_name"]),
		Category:        toString(payload["category"]),
		Dimensions:      models.Dimensions{Length: length, Width: width, Height: height},
		Weight:          weight,
		Fragility:       toBool(payload["fragility"]),
		ExpiryDate:      expiry,
		CurrentLocation: location,
		EntryDate:       now,
	}

	entry := &models.MovementLog{
		ID:           uuid.New(),
		ItemID:       item.ItemID,
		Timestamp:    now,
		MovementType: models.MovementTypeIn,
		Location:     item.CurrentLocation,
		OrderID:      models.SystemOrderID,
	}

	if err := s.inventoryRepo.AddWithMovement(ctx, item, entry); err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateSnapshots(ctx); err != nil {
		log.Printf("Failed to invalidate cached snapshots after add: %v", err)
	}
	return item, nil
}

// Delete removes an item by internal identifier. Deletes are not recorded in
// the movement log.
func (s *itemService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.inventoryRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrItemNotFound
	}

	if err := s.cache.InvalidateSnapshots(ctx); err != nil {
		log.Printf("Failed to invalidate cached snapshots after delete: %v", err)
	}
	return nil
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// toFloat coerces a JSON number or numeric string.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

// toBool coerces truthily: absent and false-y values are false, anything
// else true.
func toBool(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	case float64:
		return b != 0
	case string:
		return b != ""
	default:
		return true
	}
}

var isoDateFormats = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseISODate(s string) (time.Time, error) {
	for _, layout := range isoDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
