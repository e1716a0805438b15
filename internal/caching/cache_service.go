package caching

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"binsight/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	statsKey     = "binsight:stats"
	dashboardKey = "binsight:dashboard"
)

type CacheService interface {
	GetWarehouseStats(ctx context.Context) (*models.WarehouseStats, error)
	SetWarehouseStats(ctx context.Context, stats *models.WarehouseStats, ttl time.Duration) error
	GetDashboard(ctx context.Context) (*models.DashboardData, error)
	SetDashboard(ctx context.Context, data *models.DashboardData, ttl time.Duration) error

	// InvalidateSnapshots drops both cached snapshots; mutations call it so
	// the next read recomputes from the store.
	InvalidateSnapshots(ctx context.Context) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, addr)
	}

	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetWarehouseStats(ctx context.Context) (*models.WarehouseStats, error) {
	data, err := r.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var stats models.WarehouseStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *redisCacheService) SetWarehouseStats(ctx context.Context, stats *models.WarehouseStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, statsKey, data, ttl).Err()
}

func (r *redisCacheService) GetDashboard(ctx context.Context) (*models.DashboardData, error) {
	data, err := r.client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var dashboard models.DashboardData
	if err := json.Unmarshal(data, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (r *redisCacheService) SetDashboard(ctx context.Context, data *models.DashboardData, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, dashboardKey, payload, ttl).Err()
}

func (r *redisCacheService) InvalidateSnapshots(ctx context.Context) error {
	return r.client.Del(ctx, statsKey, dashboardKey).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
