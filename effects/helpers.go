package effects

import (
	"context"
	"errors"
	"fmt"

	effectmodel "github.com/on-the-ground/typed_basics_go/effects/model"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

// getHandler looks up the handler registered for enum in ctx.
func getHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEffectHandler, enum)
	}
	return raw, nil
}
