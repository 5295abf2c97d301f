package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const suffix = ".vhost.conf"

func TestTranslate(t *testing.T) {
	w := &Watcher{dir: "/apps", suffix: suffix}

	tests := []struct {
		name   string
		event  fsnotify.Event
		want   Event
		wantOK bool
	}{
		{"write", fsnotify.Event{Name: "/apps/a.local.vhost.conf", Op: fsnotify.Write}, Event{"/apps/a.local.vhost.conf", Changed}, true},
		{"create", fsnotify.Event{Name: "/apps/a.local.vhost.conf", Op: fsnotify.Create}, Event{"/apps/a.local.vhost.conf", Changed}, true},
		{"remove", fsnotify.Event{Name: "/apps/a.local.vhost.conf", Op: fsnotify.Remove}, Event{"/apps/a.local.vhost.conf", Removed}, true},
		{"rename", fsnotify.Event{Name: "/apps/a.local.vhost.conf", Op: fsnotify.Rename}, Event{"/apps/a.local.vhost.conf", Removed}, true},
		{"chmod", fsnotify.Event{Name: "/apps/a.local.vhost.conf", Op: fsnotify.Chmod}, Event{}, false},
		{"other file", fsnotify.Event{Name: "/apps/README", Op: fsnotify.Write}, Event{}, false},
		{"editor swap file", fsnotify.Event{Name: "/apps/.a.local.vhost.conf", Op: fsnotify.Write}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.translate(tt.event)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, suffix)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan Event, 16)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(e Event) { events <- e })
	}()

	file := filepath.Join(dir, "blog.local.vhost.conf")
	require.NoError(t, os.WriteFile(file, []byte("ServerName blog.local\n"), 0644))

	select {
	case e := <-events:
		assert.Equal(t, file, e.File)
		assert.Equal(t, Changed, e.Op)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing"), suffix)
	assert.Error(t, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "changed", Changed.String())
	assert.Equal(t, "removed", Removed.String())
}

func TestCloseBeforeRun(t *testing.T) {
	w, err := New(t.TempDir(), suffix)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second Close should be a no-op")

	done := make(chan error, 1)
	go func() {
		done <- w.Run(context.Background(), func(Event) {})
	}()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run should return once the watcher is closed")
	}
}
