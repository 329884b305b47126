package image

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"jajresources.com/image-gateway/app/domain/common"
	"jajresources.com/image-gateway/app/utils/functional"
	"jajresources.com/image-gateway/app/utils/logger"
	"jajresources.com/image-gateway/config/environment_variables"
)

const refreshKey = "images"

const (
	codeSourceRequired  = "3f0c7f8e-5b1a-4c57-9a43-0c6f2f0f4b1d"
	codePublicIDMissing = "8a4e2b61-77c9-4f0e-b2d4-51e9c3a0d6f7"
	codeUploadFailed    = "c2b7d1a0-9e34-4a8f-8f61-2d5c0b7e9a13"
	codeUpdateFailed    = "5d93a6e2-1c4b-47f8-a0e5-b86f3d2c7e40"
	codeDeleteFailed    = "e71f0b4c-3a2d-4e9b-9c85-6f1d8a2b5c37"
)

type CreateImageInput struct {
	File *ImageFile
	URL  string
	Tags TagList
	Name string
}

type UpdateImageInput struct {
	Tags TagList
	Name string
}

type CreateResult struct {
	Image *Image
	// Tags are the normalized tags that were requested.
	Tags []string
}

// ListResult is what the read path returns. Stale is set when the remote
// listing failed and the last known images (possibly none) were served.
type ListResult struct {
	Images []Image
	Stale  bool
}

// ImageService serves image metadata from a snapshot that is refreshed lazily
// once it is older than the TTL and discarded after every successful mutation.
type ImageService struct {
	store     ImageStore
	snapshots SnapshotStore
	ttl       time.Duration
	now       func() time.Time
	refreshes singleflight.Group
}

func NewService(store ImageStore, snapshots SnapshotStore) *ImageService {
	return &ImageService{
		store:     store,
		snapshots: snapshots,
		ttl:       environment_variables.EnvironmentVariables().ImageCacheTTL(),
		now:       time.Now,
	}
}

// List never fails: when a refresh is needed and the store is unreachable the
// previous snapshot, or nothing, is returned instead.
func (s *ImageService) List(ctx context.Context, filter ImageFilter) ListResult {
	snapshot, stale := s.currentSnapshot(ctx)

	images := []Image{}
	if snapshot != nil && snapshot.Images != nil {
		images = snapshot.Images
	}
	if filter.Tag != nil {
		tag := strings.ToLower(strings.TrimSpace(*filter.Tag))
		if tag != "" {
			images = functional.Filter(images, func(image Image) bool {
				return image.HasTag(tag)
			})
		}
	}
	return ListResult{Images: images, Stale: stale}
}

func (s *ImageService) Create(ctx context.Context, input CreateImageInput) (*CreateResult, error) {
	source, ok := input.source()
	if !ok {
		return nil, common.NewInvalidInputError(codeSourceRequired, "File or URL required")
	}

	tags := NormalizeTags(input.Tags)
	req := UploadRequest{
		Source: source,
		Name:   strings.TrimSpace(input.Name),
	}
	if len(tags) > 0 {
		req.Tags = tags
	}

	created, err := s.store.Upload(ctx, req)
	if err != nil {
		return nil, common.NewRemoteStoreError(codeUploadFailed, "failed to upload image", err)
	}
	s.invalidate(ctx, "create")

	return &CreateResult{Image: created, Tags: tags}, nil
}

func (s *ImageService) Update(ctx context.Context, publicID string, input UpdateImageInput) (*Image, error) {
	if strings.TrimSpace(publicID) == "" {
		return nil, common.NewInvalidInputError(codePublicIDMissing, "image id required")
	}

	updated, err := s.store.UpdateTags(ctx, UpdateRequest{
		PublicID: publicID,
		Tags:     NormalizeTags(input.Tags),
		Name:     strings.TrimSpace(input.Name),
	})
	if err != nil {
		return nil, common.NewRemoteStoreError(codeUpdateFailed, "failed to update image", err)
	}
	s.invalidate(ctx, "update")

	return updated, nil
}

func (s *ImageService) Delete(ctx context.Context, publicID string) error {
	if strings.TrimSpace(publicID) == "" {
		return common.NewInvalidInputError(codePublicIDMissing, "image id required")
	}

	if err := s.store.Delete(ctx, publicID); err != nil {
		return common.NewRemoteStoreError(codeDeleteFailed, "failed to delete image", err)
	}
	s.invalidate(ctx, "delete")

	return nil
}

func (input CreateImageInput) source() (ImageSource, bool) {
	if input.File != nil && len(input.File.Data) > 0 {
		return ImageSource{File: input.File}, true
	}
	if url := strings.TrimSpace(input.URL); url != "" {
		return ImageSource{URL: url}, true
	}
	return ImageSource{}, false
}

// currentSnapshot returns a fresh snapshot, or the last known one with stale
// set when a refresh was attempted and failed.
func (s *ImageService) currentSnapshot(ctx context.Context) (*Snapshot, bool) {
	previous := s.loadSnapshot(ctx)
	if previous.IsFresh(s.now(), s.ttl) {
		return previous, false
	}

	// Concurrent stale readers share one fetch. The fetch outlives any single
	// caller's cancellation; the transport enforces its own timeout.
	refreshCtx := context.WithoutCancel(ctx)
	result, err, _ := s.refreshes.Do(refreshKey, func() (any, error) {
		return s.refresh(refreshCtx)
	})
	if err != nil {
		logger.GetLogger().WithFields(logrus.Fields{
			"has_previous": previous != nil,
		}).Warnf("image service: failed to refresh images, serving last known snapshot: %v", err)
		return previous, true
	}
	return result.(*Snapshot), false
}

func (s *ImageService) refresh(ctx context.Context) (*Snapshot, error) {
	if locker, ok := s.snapshots.(RefreshLocker); ok {
		unlock, err := locker.LockRefresh(ctx)
		if err != nil {
			logger.GetLogger().Warnf("image service: refresh lock unavailable, refreshing without it: %v", err)
		} else {
			defer unlock()
			// another process may have refreshed while we waited
			if current := s.loadSnapshot(ctx); current.IsFresh(s.now(), s.ttl) {
				return current, nil
			}
		}
	}

	images, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snapshot := &Snapshot{Images: images, FetchedAt: s.now()}
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		logger.GetLogger().Warnf("image service: failed to save snapshot: %v", err)
	}
	logger.GetLogger().Debugf("image service: refreshed snapshot with %d images", len(images))
	return snapshot, nil
}

func (s *ImageService) loadSnapshot(ctx context.Context) *Snapshot {
	snapshot, err := s.snapshots.Load(ctx)
	if err != nil {
		logger.GetLogger().Warnf("image service: failed to load snapshot: %v", err)
		return nil
	}
	return snapshot
}

// invalidate drops the snapshot after a mutation that already took effect
// remotely, so a failure here is logged rather than returned.
func (s *ImageService) invalidate(ctx context.Context, operation string) {
	if err := s.snapshots.Invalidate(context.WithoutCancel(ctx)); err != nil {
		logger.GetLogger().Errorf("image service: failed to invalidate snapshot after %s: %v", operation, err)
	}
}
