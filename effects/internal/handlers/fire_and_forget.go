package handlers

import (
	"context"

	effectmodel "github.com/on-the-ground/typed_basics_go/effects/model"
	"go.uber.org/zap"
)

func NewFireAndForgetHandler[P any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			NewSingleQueue(ctx, bufferSize, forget(handleFn)),
			nil,
			func() {
				cancelFn()
				teardown()
			},
		),
	}
}

func NewPartitionableFireAndForgetHandler[P effectmodel.Partitionable](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, P),
	teardown func(),
) FireAndForgetHandler[P] {
	ctx, cancelFn := context.WithCancel(ctx)
	return FireAndForgetHandler[P]{
		effectScope: newEffectScope(
			ctx,
			NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, forget(handleFn)),
			nil,
			func() {
				cancelFn()
				teardown()
			},
		),
	}
}

func forget[P any](handleFn func(context.Context, P)) func(context.Context, FireAndForgetEffectMessage[P]) {
	return func(ctx context.Context, msg FireAndForgetEffectMessage[P]) {
		handleFn(ctx, msg.Payload)
	}
}

type FireAndForgetHandler[P any] struct {
	*effectScope[FireAndForgetEffectMessage[P]]
}

// FireAndForgetEffect enqueues payload. Payloads sent after Close, or with a
// done ctx, are dropped and logged.
func (ffh FireAndForgetHandler[P]) FireAndForgetEffect(ctx context.Context, payload P) {
	if err := ffh.send(ctx, FireAndForgetEffectMessage[P]{Payload: payload}); err != nil {
		zap.L().Debug(
			"fire/forget effect dropped",
			zap.String("effectId", ffh.EffectId),
			zap.Any("payload", payload),
			zap.Error(err),
		)
	}
}

var _ effectmodel.Partitionable = FireAndForgetEffectMessage[any]{}

type FireAndForgetEffectMessage[P any] struct {
	Payload P
}

func (m FireAndForgetEffectMessage[P]) PartitionKey() string {
	if p, ok := any(m.Payload).(effectmodel.Partitionable); ok {
		return p.PartitionKey()
	}
	return ""
}
