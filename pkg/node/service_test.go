package node

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nodescope/nodescope/pkg/report"
	"github.com/nodescope/nodescope/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCollector counts calls and returns a distinguishable report.
type fakeCollector struct {
	calls atomic.Int64
}

func (f *fakeCollector) Collect(context.Context) *report.Report {
	n := f.calls.Add(1)
	return &report.Report{
		Timestamp: time.Now().UTC(),
		Hostname:  fmt.Sprintf("node-%d", n),
		Hardware:  report.Hardware{CPUCores: int(n)},
	}
}

func newTestService(t *testing.T, maxAge int64) (*Service, *fakeCollector, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.json")
	fc := &fakeCollector{}
	svc := NewService(Options{
		Collector:     fc,
		Store:         store.New(path),
		Version:       "test",
		MaxAgeSeconds: maxAge,
	})
	return svc, fc, path
}

func TestEmptyCacheIsStale(t *testing.T) {
	svc, _, _ := newTestService(t, 600)

	assert.Nil(t, svc.CachedReport())
	assert.True(t, svc.IsStale())
	_, ok := svc.ReportAge()
	assert.False(t, ok)
}

func TestRefreshPopulatesCacheAndStore(t *testing.T) {
	svc, fc, _ := newTestService(t, 600)

	env, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, env)
	assert.EqualValues(t, 1, fc.calls.Load())

	cached := svc.CachedReport()
	require.NotNil(t, cached)
	assert.Equal(t, env.Checksum, cached.Checksum)
	assert.True(t, cached.Verify())
	assert.False(t, svc.IsStale())

	age, ok := svc.ReportAge()
	require.True(t, ok)
	assert.LessOrEqual(t, age, int64(1))
}

func TestLoadFromDiskReproducesWithoutCollecting(t *testing.T) {
	svc, fc, path := newTestService(t, 600)
	env, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// fresh instance over the same store, as after a daemon restart
	fresh := NewService(Options{
		Collector:     &fakeCollector{},
		Store:         store.New(path),
		Version:       "test",
		MaxAgeSeconds: 600,
	})

	loaded, err := fresh.LoadFromDisk()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, env.Checksum, loaded.Checksum)
	assert.Equal(t, "node-1", loaded.Report.Hostname)
	assert.EqualValues(t, 1, fc.calls.Load(), "restart must not trigger collection")
}

func TestLoadFromDiskEmptyStore(t *testing.T) {
	svc, _, _ := newTestService(t, 600)

	env, err := svc.LoadFromDisk()
	require.NoError(t, err)
	assert.Nil(t, env)
	assert.Nil(t, svc.CachedReport())
}

func TestRefreshReplacesWholesale(t *testing.T) {
	svc, _, _ := newTestService(t, 600)

	first, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	second, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first.Checksum, second.Checksum)
	assert.Equal(t, second.Checksum, svc.CachedReport().Checksum)
	assert.Equal(t, 2, svc.CachedReport().Report.Hardware.CPUCores)
}

func TestIsStaleUsesMaxAge(t *testing.T) {
	svc, _, _ := newTestService(t, 0)

	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	// with a zero max age, any elapsed time makes the report stale
	time.Sleep(1100 * time.Millisecond)
	assert.True(t, svc.IsStale())
}

func TestConcurrentReadsDuringRefresh(t *testing.T) {
	svc, _, _ := newTestService(t, 600)
	_, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			_, _ = svc.Refresh(context.Background())
		}
	}()

	for i := 0; i < 200; i++ {
		env := svc.CachedReport()
		require.NotNil(t, env)
		assert.True(t, env.Verify(), "readers must never observe a torn cache entry")
		_ = svc.IsStale()
	}
	<-done
}
