package jobs

import (
	"context"
	"log"
	"time"

	"binsight/internal/repositories"
)

// DefaultExpiryWindow matches the stats endpoint's expiring-soon lookahead.
const DefaultExpiryWindow = 7 * 24 * time.Hour

type ExpiryAlertService struct {
	inventoryRepo repositories.InventoryRepository
	now           func() time.Time
}

type ExpiryAlert struct {
	ItemID     string
	ItemName   string
	Category   string
	Location   string
	ExpiryDate time.Time
}

func NewExpiryAlertService(inventoryRepo repositories.InventoryRepository) *ExpiryAlertService {
	return &ExpiryAlertService{
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

// CheckExpiring returns one alert per item whose expiry falls inside
// [now, now+window).
func (a *ExpiryAlertService) CheckExpiring(ctx context.Context, window time.Duration) ([]ExpiryAlert, error) {
	if window <= 0 {
		window = DefaultExpiryWindow
	}

	now := a.now()
	items, err := a.inventoryRepo.ExpiringWithin(ctx, now, now.Add(window))
	if err != nil {
		log.Printf("Failed to list expiring items: %v", err)
		return nil, err
	}

	var alerts []ExpiryAlert
	for _, item := range items {
		if item.ExpiryDate == nil {
			continue
		}
		alerts = append(alerts, ExpiryAlert{
			ItemID:     item.ItemID,
			ItemName:   item.ItemName,
			Category:   item.Category,
			Location:   item.CurrentLocation,
			ExpiryDate: *item.ExpiryDate,
		})
	}
	return alerts, nil
}

func (a *ExpiryAlertService) LogExpiryAlerts(alerts []ExpiryAlert) {
	if len(alerts) == 0 {
		log.Println("No expiring items to report")
		return
	}

	log.Printf("%d item(s) expiring within the alert window:", len(alerts))
	for _, alert := range alerts {
		log.Printf("- '%s' (%s) at %s expires %s",
			alert.ItemName,
			alert.ItemID,
			alert.Location,
			alert.ExpiryDate.Format("2006-01-02"))
	}
}

// ScheduledExpiryCheck is the gocron entrypoint.
func (a *ExpiryAlertService) ScheduledExpiryCheck(ctx context.Context) error {
	log.Println("Starting scheduled expiry check")

	alerts, err := a.CheckExpiring(ctx, DefaultExpiryWindow)
	if err != nil {
		log.Printf("Scheduled expiry check failed: %v", err)
		return err
	}

	a.LogExpiryAlerts(alerts)
	return nil
}
