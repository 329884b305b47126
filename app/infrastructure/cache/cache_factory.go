package cache

import (
	"strings"

	"jajresources.com/image-gateway/app/domain/image"
	"jajresources.com/image-gateway/app/utils/logger"
	"jajresources.com/image-gateway/config/environment_variables"
)

// NewSnapshotStore creates the image snapshot store based on configuration
func NewSnapshotStore() image.SnapshotStore {
	cacheType := strings.ToLower(environment_variables.EnvironmentVariables().CACHE_TYPE)

	switch cacheType {
	case CacheTypeRedis:
		return NewRedisSnapshotStore(NewRedisCacheService())
	case "", CacheTypeMemory:
		return image.NewMemorySnapshotStore()
	default:
		logger.GetLogger().Warnf("unknown CACHE_TYPE %q, using in-memory snapshot store", cacheType)
		return image.NewMemorySnapshotStore()
	}
}
