package image

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jajresources.com/image-gateway/app/domain/common"
)

type fakeStore struct {
	mu        sync.Mutex
	images    []Image
	listErr   error
	uploadErr error
	updateErr error
	deleteErr error
	listGate  chan struct{}

	listCalls int
	uploads   []UploadRequest
	updates   []UpdateRequest
	deletes   []string
}

func (f *fakeStore) ListAll(ctx context.Context) ([]Image, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.listGate
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Image(nil), f.images...), nil
}

func (f *fakeStore) Upload(ctx context.Context, req UploadRequest) (*Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, req)
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	created := Image{PublicID: "new", SecureURL: "https://res/new.png", Tags: req.Tags, Name: req.Name}
	f.images = append(f.images, created)
	return &created, nil
}

func (f *fakeStore) UpdateTags(ctx context.Context, req UpdateRequest) (*Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, req)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &Image{PublicID: req.PublicID, Tags: req.Tags, Name: req.Name}, nil
}

func (f *fakeStore) Delete(ctx context.Context, publicID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, publicID)
	return f.deleteErr
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *fakeStore) setListErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listErr = err
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func seedImages() []Image {
	return []Image{
		{PublicID: "violin", SecureURL: "https://res/violin.png", Tags: []string{"strings", "bar"}, Name: "Violin"},
		{PublicID: "trumpet", SecureURL: "https://res/trumpet.png", Tags: []string{"brass"}},
		{PublicID: "cello", SecureURL: "https://res/cello.png", Tags: []string{"strings", "bar"}},
	}
}

func newTestService(store ImageStore, snapshots SnapshotStore) (*ImageService, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}
	return &ImageService{
		store:     store,
		snapshots: snapshots,
		ttl:       time.Hour,
		now:       clock.Now,
	}, clock
}

func TestListServesFromCacheWithinTTL(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, clock := newTestService(store, NewMemorySnapshotStore())

	first := service.List(t.Context(), ImageFilter{})
	clock.Advance(59 * time.Minute)
	second := service.List(t.Context(), ImageFilter{})

	assert.Equal(t, 1, store.calls())
	assert.Len(t, first.Images, 3)
	assert.Equal(t, first.Images, second.Images)
	assert.False(t, second.Stale)
}

func TestListRefreshesOnceAfterTTL(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, clock := newTestService(store, NewMemorySnapshotStore())

	service.List(t.Context(), ImageFilter{})
	clock.Advance(time.Hour)
	service.List(t.Context(), ImageFilter{})
	service.List(t.Context(), ImageFilter{})

	assert.Equal(t, 2, store.calls())
}

func TestMutationsInvalidateSnapshot(t *testing.T) {
	mutations := map[string]func(s *ImageService) error{
		"create": func(s *ImageService) error {
			_, err := s.Create(context.Background(), CreateImageInput{URL: "https://example.com/a.png"})
			return err
		},
		"update": func(s *ImageService) error {
			_, err := s.Update(context.Background(), "violin", UpdateImageInput{Tags: TagsFromString("solo")})
			return err
		},
		"delete": func(s *ImageService) error {
			return s.Delete(context.Background(), "violin")
		},
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			store := &fakeStore{images: seedImages()}
			service, _ := newTestService(store, NewMemorySnapshotStore())

			service.List(t.Context(), ImageFilter{})
			require.NoError(t, mutate(service))
			service.List(t.Context(), ImageFilter{})

			assert.Equal(t, 2, store.calls())
		})
	}
}

func TestListFallsBackToPreviousSnapshotOnFailure(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, clock := newTestService(store, NewMemorySnapshotStore())

	fresh := service.List(t.Context(), ImageFilter{})
	clock.Advance(2 * time.Hour)
	store.setListErr(errors.New("cloudinary unavailable"))

	degraded := service.List(t.Context(), ImageFilter{})

	assert.Equal(t, 2, store.calls())
	assert.True(t, degraded.Stale)
	assert.Equal(t, fresh.Images, degraded.Images)

	// the stale snapshot is kept, so the next read retries the remote
	service.List(t.Context(), ImageFilter{})
	assert.Equal(t, 3, store.calls())
}

func TestListReturnsEmptyWhenNothingKnown(t *testing.T) {
	store := &fakeStore{listErr: errors.New("unauthorized")}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	result := service.List(t.Context(), ImageFilter{})

	assert.True(t, result.Stale)
	assert.NotNil(t, result.Images)
	assert.Empty(t, result.Images)
}

func TestListAfterInvalidationAndFailureIsEmpty(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	service.List(t.Context(), ImageFilter{})
	require.NoError(t, service.Delete(t.Context(), "violin"))
	store.setListErr(errors.New("timeout"))

	result := service.List(t.Context(), ImageFilter{})
	assert.True(t, result.Stale)
	assert.Empty(t, result.Images)
}

func TestListFiltersByTag(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	tag := " BAR "
	result := service.List(t.Context(), ImageFilter{Tag: &tag})
	require.Len(t, result.Images, 2)
	assert.Equal(t, "violin", result.Images[0].PublicID)
	assert.Equal(t, "cello", result.Images[1].PublicID)

	partial := "str"
	assert.Empty(t, service.List(t.Context(), ImageFilter{Tag: &partial}).Images)

	blank := ""
	assert.Len(t, service.List(t.Context(), ImageFilter{Tag: &blank}).Images, 3)
	assert.Equal(t, 1, store.calls())
}

func TestCreateWithoutSourceFails(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	service, _ := newTestService(store, NewMemorySnapshotStore())
	service.List(t.Context(), ImageFilter{})

	inputs := []CreateImageInput{
		{},
		{URL: "   ", Tags: TagsFromString("a")},
		{File: &ImageFile{MimeType: "image/png"}},
	}
	for _, input := range inputs {
		_, err := service.Create(t.Context(), input)
		assert.True(t, common.IsInvalidInput(err))
	}

	assert.Empty(t, store.uploads)
	service.List(t.Context(), ImageFilter{})
	assert.Equal(t, 1, store.calls())
}

func TestCreateOmitsEmptyTagsAndName(t *testing.T) {
	store := &fakeStore{}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	result, err := service.Create(t.Context(), CreateImageInput{URL: "https://example.com/a.png", Tags: TagsFromString(" , ")})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.Nil(t, store.uploads[0].Tags)
	assert.Empty(t, store.uploads[0].Name)
	assert.Equal(t, "https://example.com/a.png", store.uploads[0].Source.URL)
	assert.Empty(t, result.Tags)
}

func TestCreatePrefersFileAndNormalizesTags(t *testing.T) {
	store := &fakeStore{}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	file := &ImageFile{Data: []byte{0x89, 'P', 'N', 'G'}, MimeType: "image/png"}
	result, err := service.Create(t.Context(), CreateImageInput{
		File: file,
		URL:  "https://example.com/ignored.png",
		Tags: TagsFromSlice([]string{"Brass", " Horn "}),
		Name: " French Horn ",
	})
	require.NoError(t, err)

	require.Len(t, store.uploads, 1)
	assert.Same(t, file, store.uploads[0].Source.File)
	assert.Empty(t, store.uploads[0].Source.URL)
	assert.Equal(t, []string{"brass", "horn"}, store.uploads[0].Tags)
	assert.Equal(t, "French Horn", store.uploads[0].Name)
	assert.Equal(t, []string{"brass", "horn"}, result.Tags)
	assert.Equal(t, "new", result.Image.PublicID)
}

func TestUpdateSendsExplicitEmptyTags(t *testing.T) {
	store := &fakeStore{}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	updated, err := service.Update(t.Context(), "violin", UpdateImageInput{Tags: TagsFromSlice([]string{})})
	require.NoError(t, err)

	require.Len(t, store.updates, 1)
	assert.NotNil(t, store.updates[0].Tags)
	assert.Empty(t, store.updates[0].Tags)
	assert.Equal(t, "violin", updated.PublicID)
}

func TestMutationFailuresLeaveCacheUntouched(t *testing.T) {
	remoteErr := errors.New("remote said no")
	store := &fakeStore{images: seedImages(), uploadErr: remoteErr, updateErr: remoteErr, deleteErr: remoteErr}
	service, _ := newTestService(store, NewMemorySnapshotStore())
	service.List(t.Context(), ImageFilter{})

	_, err := service.Create(t.Context(), CreateImageInput{URL: "https://example.com/a.png"})
	assert.True(t, common.IsRemoteStore(err))
	assert.ErrorIs(t, err, remoteErr)

	_, err = service.Update(t.Context(), "missing", UpdateImageInput{})
	assert.True(t, common.IsRemoteStore(err))

	err = service.Delete(t.Context(), "violin")
	assert.True(t, common.IsRemoteStore(err))

	service.List(t.Context(), ImageFilter{})
	assert.Equal(t, 1, store.calls())
}

func TestUpdateAndDeleteRequireID(t *testing.T) {
	store := &fakeStore{}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	_, err := service.Update(t.Context(), " ", UpdateImageInput{})
	assert.True(t, common.IsInvalidInput(err))
	assert.True(t, common.IsInvalidInput(service.Delete(t.Context(), "")))
	assert.Empty(t, store.updates)
	assert.Empty(t, store.deletes)
}

func TestConcurrentStaleReadsShareOneFetch(t *testing.T) {
	store := &fakeStore{images: seedImages(), listGate: make(chan struct{})}
	service, _ := newTestService(store, NewMemorySnapshotStore())

	const readers = 8
	var wg sync.WaitGroup
	results := make([]ListResult, readers)
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = service.List(context.Background(), ImageFilter{})
		}(i)
	}

	require.Eventually(t, func() bool { return store.calls() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	close(store.listGate)
	wg.Wait()

	assert.Equal(t, 1, store.calls())
	for _, result := range results {
		assert.Len(t, result.Images, 3)
	}
}

type lockingSnapshotStore struct {
	*MemorySnapshotStore
	onLock  func()
	lockErr error
	locks   int
	unlocks int
}

func (l *lockingSnapshotStore) LockRefresh(ctx context.Context) (func(), error) {
	l.locks++
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	if l.onLock != nil {
		l.onLock()
	}
	return func() { l.unlocks++ }, nil
}

func TestRefreshReusesSnapshotSavedWhileWaitingForLock(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	snapshots := &lockingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore()}
	service, clock := newTestService(store, snapshots)

	peer := &Snapshot{Images: []Image{{PublicID: "from-peer"}}}
	snapshots.onLock = func() {
		peer.FetchedAt = clock.Now()
		_ = snapshots.Save(context.Background(), peer)
	}

	result := service.List(t.Context(), ImageFilter{})

	assert.Equal(t, 0, store.calls())
	require.Len(t, result.Images, 1)
	assert.Equal(t, "from-peer", result.Images[0].PublicID)
	assert.Equal(t, 1, snapshots.unlocks)
}

func TestRefreshProceedsWhenLockUnavailable(t *testing.T) {
	store := &fakeStore{images: seedImages()}
	snapshots := &lockingSnapshotStore{MemorySnapshotStore: NewMemorySnapshotStore(), lockErr: errors.New("redis down")}
	service, _ := newTestService(store, snapshots)

	result := service.List(t.Context(), ImageFilter{})

	assert.Equal(t, 1, store.calls())
	assert.Len(t, result.Images, 3)
	assert.Equal(t, 0, snapshots.unlocks)
}
