package cart

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/encuotas/storefront-backend/pkg/logger"
	"github.com/encuotas/storefront-backend/pkg/redis"
)

// snapshot is the persisted cart envelope. Version mismatches are treated the
// same as corrupt payloads.
type snapshot struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

type kvStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}

// SnapshotStore persists per-session carts in Redis.
type SnapshotStore struct {
	kv   kvStore
	ttl  time.Duration
	logg *logger.Logger
}

// NewSnapshotStore wires a snapshot store over the shared Redis client.
func NewSnapshotStore(kv *redis.Client, ttl time.Duration, logg *logger.Logger) *SnapshotStore {
	return &SnapshotStore{kv: kv, ttl: ttl, logg: logg}
}

// Save writes the cart snapshot for the session.
func (s *SnapshotStore) Save(ctx context.Context, sessionID string, c Cart) error {
	payload, err := json.Marshal(snapshot{Version: SchemaVersion, Items: c.Items})
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, redis.CartKey(sessionID), payload, s.ttl)
}

// Restore loads the cart for the session. A missing key yields the empty
// cart. Corrupt payloads and unknown schema versions are logged as warnings
// and also degrade to the empty cart rather than failing the request.
func (s *SnapshotStore) Restore(ctx context.Context, sessionID string) (Cart, error) {
	raw, err := s.kv.Get(ctx, redis.CartKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return Empty(), nil
		}
		return Empty(), err
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.warn(ctx, sessionID, "discarding corrupt cart snapshot")
		return Empty(), nil
	}
	if snap.Version != SchemaVersion {
		s.warn(ctx, sessionID, "discarding cart snapshot with unknown schema version")
		return Empty(), nil
	}
	return Load(snap.Items), nil
}

// Delete drops the persisted snapshot for the session.
func (s *SnapshotStore) Delete(ctx context.Context, sessionID string) error {
	return s.kv.Del(ctx, redis.CartKey(sessionID))
}

func (s *SnapshotStore) warn(ctx context.Context, sessionID, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithSessionID(ctx, sessionID), msg)
}
