package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// ErrStopped is returned by Do once the dispatcher's context is cancelled.
var ErrStopped = errors.New("dispatcher stopped")

type job struct {
	ctx  context.Context
	key  string
	fn   func(ctx context.Context) error
	done chan error
}

// Dispatcher serialises mutations per store key. Jobs for the same key always
// land on the same worker, so read-modify-write cycles on one JSON value never
// interleave. Jobs for different keys run in parallel across workers.
//
// A job must not call Do for a key handled by its own worker.
type Dispatcher struct {
	workers []chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan job, numWorkers),
		stopped: make(chan struct{}),
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Do runs fn on the worker owning key and waits for its result.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}

	j := job{ctx: ctx, key: key, fn: fn, done: make(chan error, 1)}

	select {
	case d.workers[d.shardIndex(key)] <- j:
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-d.stopped:
		return ErrStopped
	}
}

// shardIndex maps a key deterministically to a worker index.
func (d *Dispatcher) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan job) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-ch:
			if j.ctx.Err() != nil {
				j.done <- j.ctx.Err()
				continue
			}
			start := time.Now()
			err := j.fn(j.ctx)
			if err != nil {
				d.log.Debug().Err(err).
					Str("key", j.key).
					Int("worker_id", id).
					Dur("elapsed", time.Since(start)).
					Msg("mutation failed")
			}
			j.done <- err
		}
	}
}

// Inline runs every job on the calling goroutine. It is used where no
// concurrent writers exist, such as one-shot CLI commands.
type Inline struct{}

func (Inline) Do(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
