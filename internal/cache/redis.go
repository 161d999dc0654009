package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"chatorder-service/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const menuKey = "menu:available"

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(addr, password string, db int, ttl time.Duration, log *zap.Logger) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Info("redis connected", zap.String("addr", addr))

	return &RedisClient{
		client: rdb,
		ttl:    ttl,
		log:    log,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// GetAvailableMenu returns the cached menu listing. Any cache problem is a
// miss, never an error for the caller.
func (r *RedisClient) GetAvailableMenu(ctx context.Context) ([]models.MenuItem, bool) {
	data, err := r.client.Get(ctx, menuKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("menu cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("menu cache payload corrupt, dropping", zap.Error(err))
		_ = r.client.Del(ctx, menuKey).Err()
		return nil, false
	}
	return items, true
}

func (r *RedisClient) SetAvailableMenu(ctx context.Context, items []models.MenuItem) {
	data, err := json.Marshal(items)
	if err != nil {
		r.log.Warn("menu cache marshal failed", zap.Error(err))
		return
	}
	if err := r.client.Set(ctx, menuKey, data, r.ttl).Err(); err != nil {
		r.log.Warn("menu cache write failed", zap.Error(err))
	}
}

func (r *RedisClient) InvalidateMenu(ctx context.Context) {
	if err := r.client.Del(ctx, menuKey).Err(); err != nil {
		r.log.Warn("menu cache invalidate failed", zap.Error(err))
	}
}
