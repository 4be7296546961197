package task

import (
	"context"

	"github.com/on-the-ground/typed_basics_go/effects"
	"github.com/on-the-ground/typed_basics_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/typed_basics_go/effects/model"
)

// Result is the outcome of a task effect.
type Result[R any] = handlers.ResumableResult[R]

// Payload defines an asynchronous operation that returns a value of type R.
// Tasks sharing a Key run one after another on the same worker.
type Payload[R any] struct {
	Key string
	Run func(context.Context) (R, error)
}

func (p Payload[R]) PartitionKey() string {
	return p.Key
}

// WithEffectHandler registers a task effect handler for tasks returning R.
// Up to config.NumWorkers tasks with distinct keys run at the same time.
func WithEffectHandler[R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
) (context.Context, func() context.Context) {
	return effects.WithPartitionableResumableEffectHandler(
		ctx,
		config,
		effectmodel.EffectTask,
		func(ctx context.Context, payload Payload[R]) (R, error) {
			done := make(chan Result[R], 1)
			go func() {
				done <- handlers.ResumableResultFrom(payload.Run(ctx))
			}()

			select {
			case res := <-done:
				return res.Value, res.Err
			case <-ctx.Done():
				return *new(R), ctx.Err()
			}
		},
	)
}

// Eff performs an asynchronous task and returns a channel with the result.
func Eff[R any](ctx context.Context, payload Payload[R]) <-chan Result[R] {
	return effects.PerformResumableEffect[Payload[R], R](ctx, effectmodel.EffectTask, payload)
}
