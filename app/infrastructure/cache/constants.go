package cache

const (
	CacheVersion        = "v1"
	ImageSnapshotKey    = CacheVersion + ":images:snapshot"
	ImageRefreshLockKey = CacheVersion + ":images:refresh:lock"
)

const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
)
