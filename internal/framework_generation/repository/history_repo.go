package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/GoSim-25-26J-441/pw-scaffold-backend/internal/framework_generation/domain"
	"github.com/redis/go-redis/v9"
)

const (
	recordKeyPrefix = "gen:record:" // Generation record: gen:record:{id}
	indexKey        = "gen:index"   // Sorted set of generation IDs scored by creation time
	defaultTTL      = 7 * 24 * time.Hour
)

// HistoryRepository keeps generation records in redis
type HistoryRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewHistoryRepository creates a new HistoryRepository. A non-positive ttl
// falls back to seven days.
func NewHistoryRepository(client *redis.Client, ttl time.Duration) *HistoryRepository {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &HistoryRepository{
		client: client,
		ttl:    ttl,
	}
}

// Save stores a generation record and indexes it by creation time
func (r *HistoryRepository) Save(ctx context.Context, rec *domain.GenerationRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal generation record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, recordKey(rec.ID), data, r.ttl)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(rec.CreatedAt.UnixNano()),
		Member: rec.ID,
	})
	pipe.Expire(ctx, indexKey, r.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save generation record: %w", err)
	}
	return nil
}

// Get retrieves a generation record by ID
func (r *HistoryRepository) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	data, err := r.client.Get(ctx, recordKey(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrGenerationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation record: %w", err)
	}

	var rec domain.GenerationRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation record: %w", err)
	}
	return &rec, nil
}

// ListRecent returns up to limit records, newest first. IDs whose record has
// expired are pruned from the index.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.GenerationRecord, error) {
	if limit <= 0 {
		return []*domain.GenerationRecord{}, nil
	}

	ids, err := r.client.ZRevRange(ctx, indexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list generations: %w", err)
	}

	records := make([]*domain.GenerationRecord, 0, len(ids))
	for _, id := range ids {
		rec, err := r.Get(ctx, id)
		if err == domain.ErrGenerationNotFound {
			r.client.ZRem(ctx, indexKey, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Ping checks the redis connection
func (r *HistoryRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func recordKey(id string) string {
	return recordKeyPrefix + id
}
