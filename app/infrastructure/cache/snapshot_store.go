package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redsync/redsync/v4"
	"jajresources.com/image-gateway/app/domain/image"
	"jajresources.com/image-gateway/app/utils/logger"
)

const (
	refreshLockExpiry = 30 * time.Second
	refreshLockTries  = 50
	refreshLockDelay  = 100 * time.Millisecond
)

// RedisSnapshotStore shares the image snapshot between gateway replicas. The
// key has no expiry so the last good snapshot survives TTL expiry; freshness
// is judged from FetchedAt by the image service.
type RedisSnapshotStore struct {
	cache CacheService
}

func NewRedisSnapshotStore(cache CacheService) *RedisSnapshotStore {
	return &RedisSnapshotStore{cache: cache}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*image.Snapshot, error) {
	cached, err := s.cache.Get(ctx, ImageSnapshotKey)
	if errors.Is(err, ErrCacheMiss) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var snapshot image.Snapshot
	if err := json.Unmarshal([]byte(cached), &snapshot); err != nil {
		return nil, fmt.Errorf("unable to unmarshal cached snapshot: %w", err)
	}
	return &snapshot, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot *image.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return s.cache.Set(ctx, ImageSnapshotKey, string(payload), 0)
}

func (s *RedisSnapshotStore) Invalidate(ctx context.Context) error {
	return s.cache.Unlink(ctx, ImageSnapshotKey)
}

// LockRefresh serialises remote refreshes across replicas.
func (s *RedisSnapshotStore) LockRefresh(ctx context.Context) (func(), error) {
	mutex := s.cache.NewMutex(ImageRefreshLockKey,
		redsync.WithExpiry(refreshLockExpiry),
		redsync.WithTries(refreshLockTries),
		redsync.WithRetryDelay(refreshLockDelay),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire refresh lock: %w", err)
	}
	return func() {
		if _, err := mutex.UnlockContext(context.WithoutCancel(ctx)); err != nil {
			logger.GetLogger().Warnf("redis snapshot store: failed to release refresh lock: %v", err)
		}
	}, nil
}
