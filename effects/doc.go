// Package effects is the small effect runtime the catalogue packages use for
// their effect-scoped variants.
//
// An effect is work that depends on runtime context: emitting a log line,
// waiting on a timer, running a task. Instead of doing that work inline, code
// performs an effect and a handler registered in the context does it.
//
// Handlers are registered with `WithXxxEffectHandler(ctx, ...)`, which returns
// the derived context and an end function. Effects are then performed through
// `PerformResumableEffect` (request/response) or `FireAndForgetEffect`.
// Performing an effect with no handler in scope panics with ErrNoEffectHandler.
//
// Example:
//
//	ctx, endOfLog := log.WithZapEffectHandler(ctx, 16, logger)
//	defer endOfLog()
//
//	log.Eff(ctx, log.LogInfo, "squared", map[string]interface{}{"n": 5})
package effects
