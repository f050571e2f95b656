package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	var calls atomic.Int32
	loadErr := errors.New("boom")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, loadErr
		}
		return 7, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, loadErr) {
		t.Fatalf("first GetOrLoad error = %v, want %v", err, loadErr)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v.(int) != 7 {
		t.Fatalf("value = %v, want 7", v)
	}
}

func TestStore_GetOrLoad_LeaderCancellationDoesNotFailWaiters(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32

	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		close(started)
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return "snapshot", nil
	}

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := store.GetOrLoad(leaderCtx, "market:snapshot", loader)
		leaderErr <- err
	}()
	<-started

	type result struct {
		value any
		err   error
	}
	waiter := make(chan result, 1)
	go func() {
		v, err := store.GetOrLoad(context.Background(), "market:snapshot", loader)
		waiter <- result{value: v, err: err}
	}()

	cancelLeader()
	if err := <-leaderErr; !errors.Is(err, context.Canceled) {
		t.Fatalf("leader error = %v, want context.Canceled", err)
	}

	close(release)
	got := <-waiter
	if got.err != nil {
		t.Fatalf("waiter error: %v", got.err)
	}
	if got.value != "snapshot" {
		t.Fatalf("waiter value = %v, want snapshot", got.value)
	}
	if n := calls.Load(); n != 1 {
		t.Fatalf("loader called %d times, want 1", n)
	}
	if v, ok := store.Get(context.Background(), "market:snapshot"); !ok || v != "snapshot" {
		t.Fatalf("cached value = %v, %v; want snapshot", v, ok)
	}
}

func TestStore_GetOrLoad_CallerReturnsOnOwnDeadline(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := store.GetOrLoad(ctx, "slow", func(context.Context) (any, error) {
		<-release
		return 1, nil
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "market:snapshot", 1)
	store.Set(ctx, "market:other", 2)
	store.Set(ctx, "watchlist:u1", 3)

	if got := store.DeletePrefix(ctx, "market:"); got != 2 {
		t.Fatalf("removed = %d, want 2", got)
	}
	if got := store.Len(); got != 1 {
		t.Fatalf("len = %d, want 1", got)
	}
	if got := store.DeletePrefix(ctx, ""); got != 0 {
		t.Fatalf("empty prefix removed %d entries", got)
	}
}

func TestLoad_Typed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)

	got, err := Load(ctx, store, "n", func(context.Context) (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got != 42 {
		t.Fatalf("Load = %d, want 42", got)
	}

	if _, err := Load(ctx, store, "n", func(context.Context) (string, error) { return "x", nil }); err == nil {
		t.Fatalf("expected type mismatch error")
	}

	direct, err := Load[string](ctx, nil, "n", func(context.Context) (string, error) { return "direct", nil })
	if err != nil || direct != "direct" {
		t.Fatalf("nil store Load = %q, %v", direct, err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
