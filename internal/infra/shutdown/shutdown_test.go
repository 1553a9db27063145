package shutdown

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler(5 * time.Second)
	if h == nil {
		t.Fatal("NewHandler returned nil")
	}
	if h.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", h.timeout)
	}
}

func TestHandler_HooksRunInReverseOrder(t *testing.T) {
	h := NewHandler(time.Second)

	var mu sync.Mutex
	order := make([]int, 0, 3)
	for i := 1; i <= 3; i++ {
		i := i
		h.OnShutdown(func(ctx context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}

	if err := h.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	want := []int{3, 2, 1}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("hook order = %v, want %v", order, want)
		}
	}
}

func TestHandler_ReturnsLastError(t *testing.T) {
	h := NewHandler(time.Second)

	hookErr := errors.New("listener close failed")
	h.OnShutdown(func(ctx context.Context) error { return hookErr })
	h.OnShutdown(func(ctx context.Context) error { return nil })

	if err := h.Shutdown(); !errors.Is(err, hookErr) {
		t.Errorf("Shutdown() error = %v, want %v", err, hookErr)
	}
}

func TestHandler_DoneClosesAfterShutdown(t *testing.T) {
	h := NewHandler(time.Second)

	select {
	case <-h.Done():
		t.Fatal("Done channel closed before shutdown")
	default:
	}

	if err := h.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatal("Done channel not closed after shutdown")
	}
}

func TestHandler_HookReceivesDeadline(t *testing.T) {
	h := NewHandler(time.Second)

	h.OnShutdown(func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("hook context should carry a deadline")
		}
		return nil
	})

	if err := h.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
