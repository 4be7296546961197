package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrHandlerClosed = errors.New("effect handler closed")

// effectScope owns the dispatcher of one registered handler.
//
// Worker channels are never closed. Senders hold the read lock while they
// enqueue, so once Close holds the write lock nothing new can reach a worker
// and whatever is still buffered goes to dropFn.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	dropFn     func(T)
	closeFn    func()
	done       chan struct{}
	mu         sync.RWMutex
	closed     bool
	closeOnce  sync.Once
}

// Close stops accepting effects, runs the teardown that cancels the workers
// and drops what they left behind. It is safe to call more than once and
// from any goroutine; it also runs when the workers' ctx ends.
func (es *effectScope[T]) Close() {
	es.closeOnce.Do(func() {
		// wakes senders blocked on a full buffer so the write lock can be taken
		close(es.done)

		es.mu.Lock()
		es.closed = true
		es.mu.Unlock()

		es.closeFn()
		es.dispatcher.drain(es.dropFn)
		zap.L().Debug("effect scope closed", zap.String("effectId", es.EffectId))
	})
}

// send enqueues msg on the worker chosen by the dispatcher.
func (es *effectScope[T]) send(ctx context.Context, msg T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	es.mu.RLock()
	defer es.mu.RUnlock()
	if es.closed {
		return ErrHandlerClosed
	}

	select {
	case <-es.done:
		return ErrHandlerClosed
	case <-ctx.Done():
		return ctx.Err()
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return nil
	}
}

// newEffectScope ties the scope to ctx, the context its workers run under.
func newEffectScope[T any](
	ctx context.Context,
	dispatcher WorkerDispatcher[T],
	dropFn func(T),
	teardown func(),
) *effectScope[T] {
	es := &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		dropFn:     dropFn,
		closeFn:    teardown,
		done:       make(chan struct{}),
	}
	context.AfterFunc(ctx, es.Close)
	return es
}
