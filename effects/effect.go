package effects

import (
	"context"

	"github.com/on-the-ground/typed_basics_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/typed_basics_go/effects/model"
	"github.com/on-the-ground/typed_basics_go/shared/helper"
	"go.uber.org/zap"
)

// WithResumableEffectHandler registers a resumable effect handler for a given effect enum.
//
// A single worker handles payloads in arrival order. Use it for effects that
// don't require partitioning.
//
// Usage:
//
//	ctx, end := WithResumableEffectHandler(ctx, 1, MyEffectEnum, handleFn)
//	defer end()
func WithResumableEffectHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewResumableHandler(ctx, bufferSize, handleFn, normalizeTeardown(teardown))
	return register(ctx, enum, "resumable", handler.EffectId, handler, handler.Close)
}

// WithPartitionableResumableEffectHandler registers a resumable effect handler whose
// payloads are spread over config.NumWorkers workers by PartitionKey().
// Payloads with the same key are handled in order by the same worker.
func WithPartitionableResumableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, normalizeTeardown(teardown))
	return register(ctx, enum, "resumable", handler.EffectId, handler, handler.Close)
}

// PerformResumableEffect sends a payload to the resumable effect handler and
// returns the channel its result arrives on.
//
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P any, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := helper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging. The handler executes without returning a result.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, normalizeTeardown(teardown))
	return register(ctx, enum, "fire/forget", handler.EffectId, handler, handler.Close)
}

// FireAndForgetEffect triggers a fire-and-forget effect for the given enum and payload.
//
// Panics if no handler is registered for the given enum.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) {
	handler := helper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	handler.FireAndForgetEffect(ctx, payload)
}

func register(
	ctx context.Context,
	enum effectmodel.EffectEnum,
	kind, effectId string,
	handler any,
	closeFn func(),
) (context.Context, func() context.Context) {
	logger := zap.L().With(
		zap.String("kind", kind),
		zap.String("effectId", effectId),
		zap.String("enum", string(enum)),
	)
	ctxWith := context.WithValue(ctx, enum, handler)
	logger.Debug("created effect handler")

	return ctxWith, func() context.Context {
		closeFn()
		logger.Debug("closed effect handler")
		return ctx
	}
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
