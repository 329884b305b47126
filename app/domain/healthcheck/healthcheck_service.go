package healthcheck

import (
	"context"
	"sync"
	"time"

	"github.com/mileusna/crontab"
	"jajresources.com/image-gateway/app/utils/logger"
	"jajresources.com/image-gateway/config/environment_variables"
)

const (
	DefaultSchedule   = "*/5 * * * *"
	pingTimeout       = 10 * time.Second
	StatusUnknown     = "unknown"
	StatusReachable   = "reachable"
	StatusUnreachable = "unreachable"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Status struct {
	AssetStore string     `json:"asset_store"`
	CheckedAt  *time.Time `json:"checked_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// HealthcheckCrontabService periodically checks that the asset store answers.
// It only reports; it never touches the image snapshot.
type HealthcheckCrontabService struct {
	assetStore Pinger
	now        func() time.Time
	mu         sync.RWMutex
	status     Status
}

func NewService(assetStore Pinger) *HealthcheckCrontabService {
	return &HealthcheckCrontabService{
		assetStore: assetStore,
		now:        time.Now,
		status:     Status{AssetStore: StatusUnknown},
	}
}

func (hs *HealthcheckCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) error {
	schedule := environment_variables.EnvironmentVariables().HEALTHCHECK_SCHEDULE
	if schedule == "" {
		schedule = DefaultSchedule
	}
	hs.CheckAssetStore(ctx)
	return ctab.AddJob(schedule, func() {
		hs.CheckAssetStore(ctx)
		environment_variables.Reload()
	})
}

func (hs *HealthcheckCrontabService) CheckAssetStore(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	err := hs.assetStore.Ping(pingCtx)
	checkedAt := hs.now()
	status := Status{AssetStore: StatusReachable, CheckedAt: &checkedAt}
	if err != nil {
		logger.GetLogger().Warnf("healthcheck: asset store unreachable: %v", err)
		status.AssetStore = StatusUnreachable
		status.Error = err.Error()
	}

	hs.mu.Lock()
	defer hs.mu.Unlock()
	hs.status = status
}

func (hs *HealthcheckCrontabService) Status() Status {
	hs.mu.RLock()
	defer hs.mu.RUnlock()
	return hs.status
}
