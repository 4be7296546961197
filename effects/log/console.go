package log

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsoleLogger builds a human-readable logger over w, dropping entries below level.
func NewConsoleLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

// WithConsoleEffectHandler registers a log handler that writes console lines to w.
func WithConsoleEffectHandler(
	ctx context.Context,
	bufferSize int,
	w io.Writer,
	level zapcore.Level,
) (context.Context, func() context.Context) {
	return WithZapEffectHandler(ctx, bufferSize, NewConsoleLogger(w, level))
}
