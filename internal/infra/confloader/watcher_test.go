// Package confloader provides configuration loading for idmint.
package confloader

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcher_DetectsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "idmint.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	var fired atomic.Int32
	w.OnChange(func(changed string) {
		fired.Add(1)
	})

	if err := w.Watch(path); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	w.StartAsync()

	// Give the watcher loop time to start before mutating the file.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("watcher did not observe the write")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	var fired atomic.Int32
	w.OnChange(func(changed string) {
		fired.Add(1)
	})

	// Editors emit several events per save; only the first within the
	// debounce window should reach the callbacks.
	for i := 0; i < 5; i++ {
		w.notifyCallbacks("/tmp/idmint.yaml")
	}

	if got := fired.Load(); got != 1 {
		t.Errorf("callbacks fired = %d, want 1", got)
	}
}

func TestWatcher_StopIsClean(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	w.StartAsync()
	time.Sleep(20 * time.Millisecond)

	if err := w.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestWatcher_WatchMissingDir(t *testing.T) {
	w, err := NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	defer w.Stop()

	if err := w.Watch("/definitely/not/here/config.yaml"); err == nil {
		t.Error("Watch() should fail for a missing directory")
	}
}
