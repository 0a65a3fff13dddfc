package taxonomy

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobads/internal/core/domain"
)

const metaUS = "platform: meta\nlocations:\n  US: {id: US, name: United States}\n"
const metaUSCA = metaUS + "  CA: {id: CA, name: Canada}\n"

func testFS(meta string) fstest.MapFS {
	return fstest.MapFS{"meta.yaml": {Data: []byte(meta)}}
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(metaUS), 0o644))

	store, err := NewStore(func() (*Tables, error) { return LoadDir(dir) }, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	before := store.Load()
	_, ok := before.Location(domain.PlatformMeta, "CA")
	require.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(metaUSCA), 0o644))
	after, err := store.Reload()
	require.NoError(t, err)

	_, ok = after.Location(domain.PlatformMeta, "CA")
	assert.True(t, ok)
	assert.Same(t, after, store.Load())

	// The old snapshot is untouched.
	_, ok = before.Location(domain.PlatformMeta, "CA")
	assert.False(t, ok)
}

func TestStoreKeepsSnapshotOnFailedReload(t *testing.T) {
	calls := 0
	first, err := LoadFS(testFS(metaUS))
	require.NoError(t, err)

	store, err := NewStore(func() (*Tables, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("disk on fire")
		}
		return first, nil
	}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	got, err := store.Reload()
	assert.Error(t, err)
	assert.Same(t, first, got)
	assert.Same(t, first, store.Load())
}

func TestNewStoreFailsWhenInitialLoadFails(t *testing.T) {
	_, err := NewStore(func() (*Tables, error) { return nil, errors.New("boom") }, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestStoreConcurrentReadersDuringReload(t *testing.T) {
	store, err := NewStore(Default, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				res := store.Load().Resolve(domain.PlatformMeta, domain.TargetingDescriptor{Industries: []string{"TECH_SOFTWARE_DEV"}})
				assert.Len(t, res.Interests, 2)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		_, err := store.Reload()
		require.NoError(t, err)
	}
	wg.Wait()
}

func TestWatcherReloadsOnFileChange(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(metaUS), 0o644))

	store, err := NewStore(func() (*Tables, error) { return LoadDir(dir) }, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	w, err := NewWatcher(store, dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	w.debounce = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	defer func() {
		cancel()
		w.Wait()
	}()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(metaUSCA), 0o644))

	assert.Eventually(t, func() bool {
		_, ok := store.Load().Location(domain.PlatformMeta, "CA")
		return ok
	}, 5*time.Second, 20*time.Millisecond)
}

func TestSource(t *testing.T) {
	embedded, err := Source("")()
	require.NoError(t, err)
	want, err := Default()
	require.NoError(t, err)
	assert.Equal(t, want.Version(), embedded.Version())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meta.yaml"), []byte(metaUS), 0o644))
	fromDir, err := Source(dir)()
	require.NoError(t, err)
	assert.NotEqual(t, want.Version(), fromDir.Version())
}
