// Package optimize searches for the reaction conditions that maximize an
// enzyme's simulated rate, using differential evolution (rand/1/bin).
package optimize

import (
	"fmt"
	"math/rand"

	"github.com/pabonaldi/bioopti/internal/kinetics"
)

// Bounds delimit the search interval for one condition variable.
type Bounds struct {
	Min, Max float64
}

func (b Bounds) span() float64 { return b.Max - b.Min }

func (b Bounds) clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Problem defines the search space over substrate concentration, pH and
// temperature.
type Problem struct {
	Substrate Bounds
	PH        Bounds
	Temp      Bounds
}

// DefaultProblem covers the usual laboratory ranges: substrate
// 0.01-10 mM, pH 4-9, temperature 20-60 °C.
func DefaultProblem() Problem {
	return Problem{
		Substrate: Bounds{0.01, 10.0},
		PH:        Bounds{4.0, 9.0},
		Temp:      Bounds{20.0, 60.0},
	}
}

// Options tune the differential evolution search. Zero values fall back to
// the defaults noted per field.
type Options struct {
	Population  int     // population size; default 40
	Generations int     // default 200
	Weight      float64 // differential weight F; default 0.8
	Crossover   float64 // crossover probability CR; default 0.9
	Seed        int64   // RNG seed; the search is deterministic per seed
}

func (o Options) withDefaults() Options {
	if o.Population <= 0 {
		o.Population = 40
	}
	// rand/1/bin needs the target plus three distinct donors.
	if o.Population < 4 {
		o.Population = 4
	}
	if o.Generations <= 0 {
		o.Generations = 200
	}
	if o.Weight <= 0 {
		o.Weight = 0.8
	}
	if o.Crossover <= 0 {
		o.Crossover = 0.9
	}
	return o
}

// Result holds the best conditions found and the rate they achieve.
type Result struct {
	Conditions kinetics.Conditions `json:"conditions"`
	Rate       float64             `json:"rate"`
}

const dim = 3 // substrate, pH, temp

// Maximize runs differential evolution over the problem bounds and returns
// the conditions with the highest simulated rate. Inhibition is not part
// of the search; params.Ki is ignored.
func Maximize(params kinetics.Params, prob Problem, opts Options) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	for _, b := range []struct {
		name string
		b    Bounds
	}{{"substrate", prob.Substrate}, {"pH", prob.PH}, {"temp", prob.Temp}} {
		if b.b.span() <= 0 {
			return Result{}, fmt.Errorf("bounds for %s: min %g not below max %g", b.name, b.b.Min, b.b.Max)
		}
	}
	if prob.Substrate.Min < 0 {
		return Result{}, fmt.Errorf("substrate bounds must be non-negative, got min %g", prob.Substrate.Min)
	}

	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))
	bounds := [dim]Bounds{prob.Substrate, prob.PH, prob.Temp}

	// Initial population, uniform over the bounds.
	pop := make([][dim]float64, opts.Population)
	fit := make([]float64, opts.Population)
	for i := range pop {
		for d := 0; d < dim; d++ {
			pop[i][d] = bounds[d].Min + rng.Float64()*bounds[d].span()
		}
		fit[i] = evaluate(params, pop[i])
	}

	for g := 0; g < opts.Generations; g++ {
		for i := range pop {
			r1, r2, r3 := pick3(rng, opts.Population, i)

			var trial [dim]float64
			forced := rng.Intn(dim)
			for d := 0; d < dim; d++ {
				if d == forced || rng.Float64() < opts.Crossover {
					trial[d] = bounds[d].clamp(pop[r1][d] + opts.Weight*(pop[r2][d]-pop[r3][d]))
				} else {
					trial[d] = pop[i][d]
				}
			}

			if f := evaluate(params, trial); f > fit[i] {
				pop[i] = trial
				fit[i] = f
			}
		}
	}

	best := 0
	for i := 1; i < opts.Population; i++ {
		if fit[i] > fit[best] {
			best = i
		}
	}
	return Result{
		Conditions: kinetics.Conditions{
			SubstrateConc: pop[best][0],
			PH:            pop[best][1],
			Temp:          pop[best][2],
		},
		Rate: fit[best],
	}, nil
}

// evaluate scores one candidate vector. Params are validated up front and
// every vector stays inside non-negative bounds, so Simulate cannot fail.
func evaluate(params kinetics.Params, x [dim]float64) float64 {
	rate, err := kinetics.Simulate(params, kinetics.Conditions{
		SubstrateConc: x[0],
		PH:            x[1],
		Temp:          x[2],
	})
	if err != nil {
		return 0
	}
	return rate
}

// pick3 draws three distinct population indices, all different from i.
func pick3(rng *rand.Rand, n, i int) (int, int, int) {
	idx := [3]int{}
	for k := 0; k < 3; {
		c := rng.Intn(n)
		if c == i || (k > 0 && c == idx[0]) || (k > 1 && c == idx[1]) {
			continue
		}
		idx[k] = c
		k++
	}
	return idx[0], idx[1], idx[2]
}
