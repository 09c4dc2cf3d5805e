package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for the loop")
	}
}

func TestLoop_RunsTasksInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop(zerolog.Nop())
	loop.Start(ctx)

	var mu sync.Mutex
	var got []int
	finished := make(chan struct{})
	for i := 0; i < 50; i++ {
		i := i
		loop.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
			if i == 49 {
				close(finished)
			}
		})
	}
	waitFor(t, finished)

	for i, v := range got {
		if v != i {
			t.Fatalf("task %d ran at position %d", v, i)
		}
	}
}

func TestLoop_NestedPostRunsOnLaterTurn(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop(zerolog.Nop())

	var order []string
	finished := make(chan struct{})
	loop.Post(func() {
		order = append(order, "first")
		loop.Post(func() {
			order = append(order, "deferred")
			close(finished)
		})
	})
	loop.Post(func() { order = append(order, "second") })
	loop.Start(ctx)
	waitFor(t, finished)

	want := []string{"first", "second", "deferred"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestLoop_RecoversFromPanic(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop(zerolog.Nop())
	loop.Start(ctx)

	finished := make(chan struct{})
	loop.Post(func() { panic("boom") })
	loop.Post(func() { close(finished) })
	waitFor(t, finished)
}

func TestLoop_PostAfter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := NewLoop(zerolog.Nop())
	loop.Start(ctx)

	start := time.Now()
	finished := make(chan struct{})
	loop.PostAfter(20*time.Millisecond, func() { close(finished) })
	waitFor(t, finished)

	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("task ran before its delay")
	}
}

func TestLoop_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(zerolog.Nop())
	loop.Start(ctx)
	loop.Start(ctx)

	cancel()
	waitFor(t, loop.Done())

	// Posting after shutdown must not block.
	loop.Post(func() {})
}
