// Package study drives convergence studies: the same flight integrated at a
// shrinking series of step sizes so the results can be compared row by row.
package study

import (
	"fmt"

	"github.com/san-kum/trajlab/internal/phys"
)

const (
	DefaultDivisor = 10.0
	DefaultCount   = 4
	DefaultMinStep = 1e-7
)

// Options controls how the step-size series is derived from the base step.
type Options struct {
	Divisor float64 // successive steps shrink by this factor
	Count   int     // series length before the floor is applied
	MinStep float64 // steps below this floor are skipped
}

func DefaultOptions() Options {
	return Options{
		Divisor: DefaultDivisor,
		Count:   DefaultCount,
		MinStep: DefaultMinStep,
	}
}

// Steps derives the ordered step-size series {base, base/d, base/d^2, ...},
// dropping entries below the floor.
func Steps(base float64, opts Options) []float64 {
	steps := make([]float64, 0, opts.Count)
	dt := base
	for i := 0; i < opts.Count; i++ {
		if dt >= opts.MinStep {
			steps = append(steps, dt)
		}
		dt /= opts.Divisor
	}
	return steps
}

// Run integrates the same parameters once per surviving step size and
// returns the results in series order.
func Run(integ *phys.Integrator, p phys.Params, base float64, opts Options) ([]*phys.Result, error) {
	if base <= 0 {
		return nil, fmt.Errorf("base step must be positive, got %f", base)
	}
	if opts.Divisor <= 1 {
		return nil, fmt.Errorf("divisor must be greater than 1, got %f", opts.Divisor)
	}
	if opts.Count <= 0 {
		return nil, fmt.Errorf("series count must be positive, got %d", opts.Count)
	}

	steps := Steps(base, opts)
	if len(steps) == 0 {
		return nil, fmt.Errorf("no step sizes at or above the %g floor", opts.MinStep)
	}

	results := make([]*phys.Result, 0, len(steps))
	for _, dt := range steps {
		res, err := integ.Integrate(p, dt)
		if err != nil {
			return nil, fmt.Errorf("dt=%g: %w", dt, err)
		}
		results = append(results, res)
	}
	return results, nil
}
