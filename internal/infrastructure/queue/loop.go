package queue

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Loop is a cooperative event loop: posted tasks run one at a time on a single
// goroutine, in the order they were posted. A task may post further tasks; they
// run on a later turn, after every task already queued.
type Loop struct {
	mu      sync.Mutex
	pending []func()
	wake    chan struct{}
	done    chan struct{}
	started bool
	log     zerolog.Logger
}

// NewLoop creates a Loop. Call Start before expecting tasks to run.
func NewLoop(log zerolog.Logger) *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
		log:  log,
	}
}

// Start launches the loop goroutine. It stops when ctx is cancelled; tasks
// still queued at that point are dropped. Calling Start twice is a no-op.
func (l *Loop) Start(ctx context.Context) {
	l.mu.Lock()
	if l.started {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	go l.run(ctx)
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Post queues task for the next free turn. It never blocks.
func (l *Loop) Post(task func()) {
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// PostAfter queues task once delay has elapsed.
func (l *Loop) PostAfter(delay time.Duration, task func()) {
	if delay <= 0 {
		l.Post(task)
		return
	}
	time.AfterFunc(delay, func() { l.Post(task) })
}

func (l *Loop) run(ctx context.Context) {
	defer close(l.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.wake:
		}

		for {
			task, ok := l.next()
			if !ok {
				break
			}
			if ctx.Err() != nil {
				return
			}
			l.runTask(task)
		}
	}
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.pending) == 0 {
		return nil, false
	}
	task := l.pending[0]
	l.pending[0] = nil
	l.pending = l.pending[1:]
	return task, true
}

func (l *Loop) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error().Interface("panic", r).Msg("event loop task panicked")
		}
	}()
	task()
}
