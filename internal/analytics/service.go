package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"binsight/internal/caching"
	"binsight/internal/models"
	"binsight/internal/repositories"
)

// UtilizationSummary is the aggregated volumetric utilization of a bin set.
type UtilizationSummary struct {
	TotalCapacity float64
	UsedCapacity  float64
	Percent       float64
}

// PercentString formats the percentage to one decimal place for display.
func (u UtilizationSummary) PercentString() string {
	return fmt.Sprintf("%.1f", u.Percent)
}

// Aggregate computes volumetric utilization over a set of bins. Bins whose
// capacity failed to parse have zero volume and contribute nothing to either
// total. Utilization above 1.0 is reported as-is, so the percentage can
// exceed 100.
func Aggregate(bins []*models.Bin) UtilizationSummary {
	var summary UtilizationSummary
	for _, b := range bins {
		vol := b.Capacity.Volume()
		summary.TotalCapacity += vol
		summary.UsedCapacity += vol * b.CurrentUtilization
	}
	if summary.TotalCapacity > 0 {
		summary.Percent = summary.UsedCapacity / summary.TotalCapacity * 100
	}
	return summary
}

const (
	// expiryWindow is the lookahead for the expiring-soon count: [now, now+7d).
	expiryWindow = 7 * 24 * time.Hour

	snapshotTTL = 5 * time.Minute

	dashboardItemLimit = 10
)

// Service computes the warehouse statistics and dashboard snapshots. The
// sub-computations read the store independently; there is no snapshot
// isolation across them.
type Service interface {
	WarehouseStats(ctx context.Context) (*models.WarehouseStats, error)
	Dashboard(ctx context.Context) (*models.DashboardData, error)
	RefreshSnapshots(ctx context.Context) error
}

type statsService struct {
	layoutRepo    repositories.WarehouseLayoutRepository
	inventoryRepo repositories.InventoryRepository
	cache         caching.CacheService
	now           func() time.Time
}

func NewStatsService(layoutRepo repositories.WarehouseLayoutRepository, inventoryRepo repositories.InventoryRepository, cache caching.CacheService) Service {
	return &statsService{
		layoutRepo:    layoutRepo,
		inventoryRepo: inventoryRepo,
		cache:         cache,
		now:           time.Now,
	}
}

func (s *statsService) WarehouseStats(ctx context.Context) (*models.WarehouseStats, error) {
	cached, err := s.cache.GetWarehouseStats(ctx)
	if err != nil {
		log.Printf("Failed to read stats cache: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetWarehouseStats(ctx, stats, snapshotTTL); err != nil {
		log.Printf("Failed to cache warehouse stats: %v", err)
	}
	return stats, nil
}

func (s *statsService) computeStats(ctx context.Context) (*models.WarehouseStats, error) {
	zoneIDs, err := s.layoutRepo.DistinctZones(ctx)
	if err != nil {
		return nil, err
	}

	zones := make([]models.ZoneStats, 0, len(zoneIDs))
	for _, zone := range zoneIDs {
		bins, err := s.layoutRepo.ListBinsByZone(ctx, zone)
		if err != nil {
			return nil, err
		}
		summary := Aggregate(bins)
		zones = append(zones, models.ZoneStats{
			Name:        zone,
			Utilization: summary.PercentString(),
			Bins:        len(bins),
		})
	}

	categories, err := s.inventoryRepo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	expiring, err := s.inventoryRepo.CountExpiringWithin(ctx, now, now.Add(expiryWindow))
	if err != nil {
		return nil, err
	}

	total, err := s.inventoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.WarehouseStats{
		Zones:        zones,
		Categories:   categories,
		TotalItems:   total,
		ExpiringSoon: expiring,
	}, nil
}

func (s *statsService) Dashboard(ctx context.Context) (*models.DashboardData, error) {
	cached, err := s.cache.GetDashboard(ctx)
	if err != nil {
		log.Printf("Failed to read dashboard cache: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	data, err := s.computeDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDashboard(ctx, data, snapshotTTL); err != nil {
		log.Printf("Failed to cache dashboard: %v", err)
	}
	return data, nil
}

func (s *statsService) computeDashboard(ctx context.Context) (*models.DashboardData, error) {
	items, err := s.inventoryRepo.Latest(ctx, dashboardItemLimit)
	if err != nil {
		return nil, err
	}

	total, err := s.inventoryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	zones, err := s.layoutRepo.DistinctZones(ctx)
	if err != nil {
		return nil, err
	}

	bins, err := s.layoutRepo.ListBins(ctx)
	if err != nil {
		return nil, err
	}
	summary := Aggregate(bins)

	return &models.DashboardData{
		Items:       items,
		TotalItems:  total,
		Zones:       zones,
		Utilization: summary.PercentString() + "%",
	}, nil
}

// RefreshSnapshots recomputes both snapshots and re-caches them. The
// background scheduler runs it to keep the dashboard warm.
func (s *statsService) RefreshSnapshots(ctx context.Context) error {
	stats, err := s.computeStats(ctx)
	if err != nil {
		return err
	}
	if err := s.cache.SetWarehouseStats(ctx, stats, snapshotTTL); err != nil {
		return err
	}

	data, err := s.computeDashboard(ctx)
	if err != nil {
		return err
	}
	return s.cache.SetDashboard(ctx, data, snapshotTTL)
}
