package optimize

import (
	"math"
	"testing"

	"github.com/pabonaldi/bioopti/internal/kinetics"
)

func sharpEnzyme() kinetics.Params {
	return kinetics.Params{
		Vmax:        100.0,
		Km:          0.1,
		OptimalPH:   7.0,
		OptimalTemp: 37.0,
		PHSigma:     0.5,
		TempSigma:   5.0,
	}
}

func TestMaximize_FindsOptimum(t *testing.T) {
	res, err := Maximize(sharpEnzyme(), DefaultProblem(), Options{Seed: 1})
	if err != nil {
		t.Fatalf("Maximize: %v", err)
	}

	// The optimum lies inside the bounds for pH and temperature; the rate
	// is monotone in substrate, so the best substrate sits at the top of
	// its interval.
	if math.Abs(res.Conditions.PH-7.0) > 0.1 {
		t.Errorf("best pH = %v, want ~7.0", res.Conditions.PH)
	}
	if math.Abs(res.Conditions.Temp-37.0) > 0.5 {
		t.Errorf("best temp = %v, want ~37.0", res.Conditions.Temp)
	}
	if res.Conditions.SubstrateConc < 9.0 {
		t.Errorf("best substrate = %v, want near upper bound 10", res.Conditions.SubstrateConc)
	}
	if res.Rate <= 0 || res.Rate > sharpEnzyme().Vmax {
		t.Errorf("rate = %v, want in (0, vmax]", res.Rate)
	}
}

func TestMaximize_RespectsBounds(t *testing.T) {
	prob := DefaultProblem()
	res, err := Maximize(sharpEnzyme(), prob, Options{Seed: 7, Generations: 30})
	if err != nil {
		t.Fatalf("Maximize: %v", err)
	}
	c := res.Conditions
	if c.SubstrateConc < prob.Substrate.Min || c.SubstrateConc > prob.Substrate.Max {
		t.Errorf("substrate %v outside %+v", c.SubstrateConc, prob.Substrate)
	}
	if c.PH < prob.PH.Min || c.PH > prob.PH.Max {
		t.Errorf("pH %v outside %+v", c.PH, prob.PH)
	}
	if c.Temp < prob.Temp.Min || c.Temp > prob.Temp.Max {
		t.Errorf("temp %v outside %+v", c.Temp, prob.Temp)
	}
}

func TestMaximize_DeterministicPerSeed(t *testing.T) {
	first, err := Maximize(sharpEnzyme(), DefaultProblem(), Options{Seed: 42})
	if err != nil {
		t.Fatalf("Maximize: %v", err)
	}
	second, err := Maximize(sharpEnzyme(), DefaultProblem(), Options{Seed: 42})
	if err != nil {
		t.Fatalf("Maximize (second): %v", err)
	}
	if first != second {
		t.Errorf("same seed produced different results: %+v vs %+v", first, second)
	}
}

func TestMaximize_OptimumOutsideBounds(t *testing.T) {
	// A thermophile whose optimum sits above the search interval: the
	// best temperature must land on the boundary.
	p := sharpEnzyme()
	p.OptimalTemp = 80.0
	res, err := Maximize(p, DefaultProblem(), Options{Seed: 3})
	if err != nil {
		t.Fatalf("Maximize: %v", err)
	}
	if math.Abs(res.Conditions.Temp-60.0) > 0.5 {
		t.Errorf("best temp = %v, want at upper bound 60", res.Conditions.Temp)
	}
}

func TestMaximize_InvalidBounds(t *testing.T) {
	prob := DefaultProblem()
	prob.PH = Bounds{9.0, 4.0}
	if _, err := Maximize(sharpEnzyme(), prob, Options{Seed: 1}); err == nil {
		t.Fatal("Maximize accepted inverted bounds")
	}
}

func TestMaximize_InvalidParams(t *testing.T) {
	p := sharpEnzyme()
	p.Vmax = -1
	if _, err := Maximize(p, DefaultProblem(), Options{Seed: 1}); err == nil {
		t.Fatal("Maximize accepted invalid params")
	}
}
