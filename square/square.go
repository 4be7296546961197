// Package square squares numbers after a fixed delay.
package square

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/on-the-ground/typed_basics_go/effects/log"
	"github.com/on-the-ground/typed_basics_go/effects/task"
	"github.com/samber/mo"
	"golang.org/x/sync/errgroup"
)

// Delay is how long a successful square takes to resolve.
const Delay = time.Second

var ErrNegativeNumber = errors.New("negative number not allowed")

// Pending is a square that has been started but may not have resolved yet.
type Pending struct {
	future *mo.Future[float64]
}

// Async starts squaring n. Non-negative inputs resolve to n*n once Delay has
// passed. Negative inputs reject with ErrNegativeNumber right away, without
// waiting. Every call runs on its own timer and cannot be cancelled.
func Async(n float64) *Pending {
	return &Pending{
		future: mo.NewFuture(func(resolve func(float64), reject func(error)) {
			if n < 0 {
				reject(ErrNegativeNumber)
				return
			}
			time.AfterFunc(Delay, func() {
				resolve(n * n)
			})
		}),
	}
}

// Await blocks until the square resolves or rejects.
func (p *Pending) Await() (float64, error) {
	return p.future.Collect()
}

func (p *Pending) Result() mo.Result[float64] {
	return p.future.Result()
}

// All squares every input concurrently and returns the results in input
// order. It waits for every square to settle and reports the first error.
func All(ns ...float64) ([]float64, error) {
	pending := make([]*Pending, len(ns))
	for i, n := range ns {
		pending[i] = Async(n)
	}

	results := make([]float64, len(ns))
	var g errgroup.Group
	for i, p := range pending {
		g.Go(func() error {
			v, err := p.Await()
			if err != nil {
				return err
			}
			results[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Eff squares n as a task effect and reports the outcome through the log
// effect. ctx must carry a log handler and, registered after it, a float64
// task handler.
func Eff(ctx context.Context, n float64) <-chan task.Result[float64] {
	fields := map[string]interface{}{"n": n}
	log.Eff(ctx, log.LogDebug, "square requested", fields)

	return task.Eff(ctx, task.Payload[float64]{
		Key: strconv.FormatFloat(n, 'g', -1, 64),
		Run: func(ctx context.Context) (float64, error) {
			v, err := Async(n).Await()
			if err != nil {
				log.Eff(ctx, log.LogWarn, "square rejected", map[string]interface{}{
					"n":     n,
					"error": err.Error(),
				})
				return 0, err
			}
			log.Eff(ctx, log.LogInfo, "square resolved", map[string]interface{}{
				"n":      n,
				"square": v,
			})
			return v, nil
		},
	})
}
