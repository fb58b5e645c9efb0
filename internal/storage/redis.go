package storage

import (
	"context"
	"strconv"
	"time"

	"coffeeshop-pos/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	Client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{Client: client}
}

func dailyTopItemsKey(day string) string {
	return "sales:topitems:" + day
}

func dailyTotalsKey(day string) string {
	return "sales:totals:" + day
}

// RecordOrderPlaced bumps the per-day counters the reports screen reads and
// sets the new-order marker the order-management screen polls.
func (s *RedisStore) RecordOrderPlaced(ctx context.Context, event domain.OrderEvent) error {
	day := event.OccurredAt.Format("2006-01-02")

	topKey := dailyTopItemsKey(day)
	for _, item := range event.Items {
		s.Client.ZIncrBy(ctx, topKey, float64(item.Quantity), strconv.Itoa(item.MenuItemID))
	}
	s.Client.Expire(ctx, topKey, 7*24*time.Hour)

	totalsKey := dailyTotalsKey(day)
	s.Client.HIncrBy(ctx, totalsKey, "orders_placed", 1)
	s.Client.Expire(ctx, totalsKey, 7*24*time.Hour)

	return s.Client.Set(ctx, "orders:latest", event.OrderNumber, 24*time.Hour).Err()
}

// RecordOrderCompleted accumulates completed revenue for the day.
func (s *RedisStore) RecordOrderCompleted(ctx context.Context, event domain.OrderEvent) error {
	day := event.OccurredAt.Format("2006-01-02")
	totalsKey := dailyTotalsKey(day)

	s.Client.HIncrBy(ctx, totalsKey, "orders_completed", 1)
	revenue, _ := event.TotalAmount.Float64()
	err := s.Client.HIncrByFloat(ctx, totalsKey, "gross_sales", revenue).Err()
	s.Client.Expire(ctx, totalsKey, 7*24*time.Hour)
	return err
}

// TopItemQuantities returns menu_item_id → quantity for a day, highest
// first. Empty when the aggregator has not seen the day (caller falls back
// to Postgres).
func (s *RedisStore) TopItemQuantities(ctx context.Context, day string, limit int) (map[int]int, error) {
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.Client.ZRevRangeWithScores(ctx, dailyTopItemsKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	quantities := make(map[int]int, len(entries))
	for _, entry := range entries {
		member, ok := entry.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		quantities[id] = int(entry.Score)
	}
	return quantities, nil
}

func (s *RedisStore) LatestOrderNumber(ctx context.Context) (string, error) {
	latest, err := s.Client.Get(ctx, "orders:latest").Result()
	if err == redis.Nil {
		return "", nil
	}
	return latest, err
}
