package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/axname/internal/logging"
)

func newTestWatcher(t *testing.T, delay time.Duration) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(delay, logging.NewTestLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = fw.Stop() })
	return fw
}

// batchRecorder collects every batch handed to a handler.
type batchRecorder struct {
	mu      sync.Mutex
	batches [][]ChangeEvent
}

func (r *batchRecorder) handle(_ context.Context, events []ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, events)
	return nil
}

func (r *batchRecorder) paths() map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	for _, batch := range r.batches {
		for _, e := range batch {
			seen[filepath.Base(e.Path)] = true
		}
	}
	return seen
}

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcherRejectsBadDelay(t *testing.T) {
	_, err := NewFileWatcher(0, nil)
	assert.Error(t, err)
}

func TestFileWatcherReportsHTMLChanges(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "pages"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "node_modules"), 0o755))

	fw := newTestWatcher(t, 30*time.Millisecond)
	fw.AddFilter(HTMLFilter)
	fw.IgnoreDirs("node_modules")

	recorder := &batchRecorder{}
	fw.AddHandler(recorder.handle)
	require.NoError(t, fw.AddRecursive(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "index.html"), []byte("<p>x</p>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "node_modules", "lib.html"), []byte("x"), 0o644))

	require.Eventually(t, func() bool {
		return recorder.paths()["index.html"]
	}, 2*time.Second, 10*time.Millisecond)

	seen := recorder.paths()
	assert.False(t, seen["notes.txt"])
	assert.False(t, seen["lib.html"])
}

func TestFileWatcherWatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()

	fw := newTestWatcher(t, 30*time.Millisecond)
	fw.AddFilter(HTMLFilter)
	recorder := &batchRecorder{}
	fw.AddHandler(recorder.handle)
	require.NoError(t, fw.AddRecursive(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	sub := filepath.Join(dir, "later")
	require.NoError(t, os.Mkdir(sub, 0o755))

	// The directory watch is added asynchronously; keep writing until seen.
	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(sub, "new.html"), []byte("<p>y</p>"), 0o644)
		return recorder.paths()["new.html"]
	}, 3*time.Second, 50*time.Millisecond)
}

func TestFileWatcherHandlerErrorsDoNotStopProcessing(t *testing.T) {
	dir := t.TempDir()

	fw := newTestWatcher(t, 20*time.Millisecond)
	recorder := &batchRecorder{}
	fw.AddHandler(func(context.Context, []ChangeEvent) error { return errors.New("handler failed") })
	fw.AddHandler(recorder.handle)
	require.NoError(t, fw.AddPath(dir))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, fw.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.html"), []byte("a"), 0o644))
	require.Eventually(t, func() bool {
		return recorder.paths()["a.html"]
	}, 2*time.Second, 10*time.Millisecond)
}

func TestFileWatcherPaths(t *testing.T) {
	fw := newTestWatcher(t, 50*time.Millisecond)

	assert.NoError(t, fw.AddPath(t.TempDir()))
	assert.Error(t, fw.AddPath(filepath.Join(t.TempDir(), "missing")))
	assert.ErrorContains(t, fw.AddPath("../outside"), "traversal")
	assert.ErrorContains(t, fw.AddRecursive(""), "empty path")
}

func TestFileWatcherStopTwice(t *testing.T) {
	fw, err := NewFileWatcher(50*time.Millisecond, logging.NewTestLogger())
	require.NoError(t, err)

	assert.NoError(t, fw.Stop())
	assert.NoError(t, fw.Stop())
}

func TestDebouncer(t *testing.T) {
	debouncer := NewDebouncer(40 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go debouncer.start(ctx)

	debouncer.events <- ChangeEvent{Path: "b.html", Type: EventTypeCreated}
	debouncer.events <- ChangeEvent{Path: "a.html", Type: EventTypeModified}
	debouncer.events <- ChangeEvent{Path: "b.html", Type: EventTypeModified}

	select {
	case batch := <-debouncer.output:
		require.Len(t, batch, 2)
		assert.Equal(t, "a.html", batch[0].Path)
		assert.Equal(t, "b.html", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type, "last event per path wins")
	case <-time.After(2 * time.Second):
		t.Fatal("no batch emitted")
	}
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name     string
		filter   FileFilter
		path     string
		expected bool
	}{
		{"html", HTMLFilter, "site/index.html", true},
		{"htm upper case", HTMLFilter, "SITE/PAGE.HTM", true},
		{"xhtml is not html", HTMLFilter, "page.xhtml", false},
		{"templ", HTMLFilter, "component.templ", false},
		{"custom extension", ExtensionFilter(".svg"), "icon.svg", true},
		{"ignored dir", IgnoreDirFilter("node_modules", ".git"), "a/node_modules/x.html", false},
		{"ignored top dir", IgnoreDirFilter(".git"), ".git/index.html", false},
		{"name is not a dir", IgnoreDirFilter("node_modules"), "a/node_modules.html", true},
		{"emacs lock", NoEditorTempFilter, "dir/.#index.html", false},
		{"backup", NoEditorTempFilter, "index.html~", false},
		{"vim swap", NoEditorTempFilter, ".index.html.swp", false},
		{"regular", NoEditorTempFilter, "index.html", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter(tt.path))
		})
	}
}
