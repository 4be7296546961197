package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/typed_basics_go/effects/model"
)

// --- common interface ---

type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// drain hands every buffered message to dropFn without blocking.
	drain(dropFn func(T))
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) drain(dropFn func(T)) {
	drainChannel(q.effectCh, dropFn)
}

// NewSingleQueue starts one worker that handles every message in arrival order.
// The worker stops when ctx is done; the channel itself is never closed.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	ready := make(chan struct{})

	go runWorker(ctx, effCh, handleFn, func() { close(ready) })
	<-ready

	return singleQueue[T]{effectCh: effCh}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	return pq.effectChs[getIndexByHash(msg, len(pq.effectChs))]
}

func (pq partitionedQueue[T]) drain(dropFn func(T)) {
	for _, ch := range pq.effectChs {
		drainChannel(ch, dropFn)
	}
}

// NewPartitionedQueue starts numWorkers workers and routes each message by the
// hash of its PartitionKey, so messages with the same key keep their order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	ready := sync.WaitGroup{}
	for i := range channels {
		ready.Add(1)
		channels[i] = make(chan T, bufferSize)
		go runWorker(ctx, channels[i], handleFn, ready.Done)
	}
	ready.Wait()
	return partitionedQueue[T]{effectChs: channels}
}

// runWorker handles messages until ctx is done.
func runWorker[T any](
	ctx context.Context,
	ch chan T,
	handleFn func(context.Context, T),
	started func(),
) {
	started()
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		select {
		case msg := <-ch:
			handleFn(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

func drainChannel[T any](ch chan T, dropFn func(T)) {
	for {
		select {
		case msg := <-ch:
			if dropFn != nil {
				dropFn(msg)
			}
		default:
			return
		}
	}
}
