package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/m4rkovic/succulent-shop/internal/domains/orders/ports"
)

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

const keyPrefix = "orders:idempotency:"

// DefaultTTL bounds how long a placement key stays replayable.
const DefaultTTL = 24 * time.Hour

// IdempotencyStore persists placement keys in Redis so replays survive
// process restarts and work across replicas.
type IdempotencyStore struct {
	client *goredis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewIdempotencyStore wraps a Redis client. A non-positive ttl falls back to
// DefaultTTL.
func NewIdempotencyStore(client *goredis.Client, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl, now: time.Now}
}

type storedRecord struct {
	Key         string    `json:"key"`
	RequestHash string    `json:"requestHash"`
	OrderID     int64     `json:"orderId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s *IdempotencyStore) Get(ctx context.Context, key string) (*ports.IdempotencyRecord, error) {
	if err := s.ensureClient(); err != nil {
		return nil, err
	}
	payload, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis idempotency get: %w", err)
	}
	var stored storedRecord
	if err := json.Unmarshal(payload, &stored); err != nil {
		return nil, fmt.Errorf("redis idempotency decode: %w", err)
	}
	return stored.toRecord(), nil
}

func (s *IdempotencyStore) Save(ctx context.Context, record ports.IdempotencyRecord) (*ports.IdempotencyRecord, error) {
	if err := s.ensureClient(); err != nil {
		return nil, err
	}
	now := s.now()
	stored := storedRecord{
		Key:         record.Key,
		RequestHash: record.RequestHash,
		OrderID:     record.OrderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	payload, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	set, err := s.client.SetNX(ctx, keyPrefix+record.Key, payload, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("redis idempotency save: %w", err)
	}
	if set {
		return stored.toRecord(), nil
	}
	// Lost the race or the key pre-existed: surface the stored record.
	existing, err := s.Get(ctx, record.Key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// Key expired between SetNX and Get; treat the save as fresh.
		return stored.toRecord(), s.client.Set(ctx, keyPrefix+record.Key, payload, s.ttl).Err()
	}
	if existing.RequestHash != record.RequestHash || existing.OrderID != record.OrderID {
		return existing, ports.ErrIdempotencyConflict
	}
	return existing, nil
}

func (s *IdempotencyStore) ensureClient() error {
	if s == nil || s.client == nil {
		return errors.New("redis idempotency store not configured")
	}
	return nil
}

func (r storedRecord) toRecord() *ports.IdempotencyRecord {
	return &ports.IdempotencyRecord{
		Key:         r.Key,
		RequestHash: r.RequestHash,
		OrderID:     r.OrderID,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
