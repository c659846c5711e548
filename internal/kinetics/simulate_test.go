package kinetics

import (
	"errors"
	"math"
	"testing"
)

// ldhParams mirrors the lactate dehydrogenase reference record.
func ldhParams() Params {
	return Params{
		Vmax:        100.0,
		Km:          0.5,
		OptimalPH:   7.0,
		OptimalTemp: 37.0,
		PHSigma:     1.0,
		TempSigma:   5.0,
	}
}

func simulateOK(t *testing.T, p Params, c Conditions) float64 {
	t.Helper()
	rate, err := Simulate(p, c)
	if err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return rate
}

func TestSimulate_AtOptimum_PlainMichaelisMenten(t *testing.T) {
	// With both modifiers collapsed to 1: 100 * 2.5 / (0.5 + 2.5).
	rate := simulateOK(t, ldhParams(), Conditions{SubstrateConc: 2.5, PH: 7.0, Temp: 37.0})
	want := 100.0 * 2.5 / 3.0
	if math.Abs(rate-want) > 1e-9 {
		t.Errorf("rate = %v, want %v", rate, want)
	}
}

func TestSimulate_ZeroSubstrate_ZeroRate(t *testing.T) {
	rate := simulateOK(t, ldhParams(), Conditions{SubstrateConc: 0, PH: 5.0, Temp: 20.0})
	if rate != 0 {
		t.Errorf("rate = %v, want 0", rate)
	}
}

func TestSimulate_RateBounded(t *testing.T) {
	p := ldhParams()
	p.Ki = Float(0.1)
	cases := []Conditions{
		{SubstrateConc: 0.1, PH: 7.0, Temp: 37.0},
		{SubstrateConc: 1000.0, PH: 7.0, Temp: 37.0},
		{SubstrateConc: 2.5, PH: 3.0, Temp: 80.0},
		{SubstrateConc: 2.5, PH: 7.0, Temp: 37.0, InhibitorConc: Float(5.0)},
	}
	for _, c := range cases {
		rate := simulateOK(t, p, c)
		if rate < 0 || rate > p.Vmax {
			t.Errorf("Simulate(%+v) = %v, want within [0, %v]", c, rate, p.Vmax)
		}
	}
}

func TestSimulate_MonotoneInSubstrate(t *testing.T) {
	p := ldhParams()
	prev := -1.0
	for _, s := range []float64{0, 0.1, 0.5, 1.0, 2.5, 10.0, 100.0} {
		rate := simulateOK(t, p, Conditions{SubstrateConc: s, PH: 6.5, Temp: 30.0})
		if rate < prev {
			t.Fatalf("rate decreased at [S]=%v: %v < %v", s, rate, prev)
		}
		prev = rate
	}
}

func TestSimulate_InhibitorDecreasesRate(t *testing.T) {
	p := ldhParams()
	p.Ki = Float(0.1)
	c := Conditions{SubstrateConc: 1.0, PH: 7.0, Temp: 37.0}

	plain := simulateOK(t, p, c)
	c.InhibitorConc = Float(0.5)
	inhibited := simulateOK(t, p, c)

	if !(inhibited < plain) {
		t.Errorf("inhibited rate %v not below uninhibited %v", inhibited, plain)
	}
}

func TestSimulate_ZeroInhibitorEqualsAbsent(t *testing.T) {
	p := ldhParams()
	p.Ki = Float(0.1)

	absent := simulateOK(t, p, Conditions{SubstrateConc: 1.0, PH: 7.0, Temp: 37.0})
	zero := simulateOK(t, p, Conditions{SubstrateConc: 1.0, PH: 7.0, Temp: 37.0, InhibitorConc: Float(0)})

	if absent != zero {
		t.Errorf("zero inhibitor rate %v != absent inhibitor rate %v", zero, absent)
	}
}

func TestSimulate_PHFactorSymmetric(t *testing.T) {
	p := ldhParams()
	for _, d := range []float64{0.3, 1.0, 2.5} {
		up := simulateOK(t, p, Conditions{SubstrateConc: 1.0, PH: p.OptimalPH + d, Temp: p.OptimalTemp})
		down := simulateOK(t, p, Conditions{SubstrateConc: 1.0, PH: p.OptimalPH - d, Temp: p.OptimalTemp})
		if up != down {
			t.Errorf("pH +%v/-%v asymmetric: %v vs %v", d, d, up, down)
		}
	}
}

func TestSimulate_Regression(t *testing.T) {
	// kmEff = 0.5*(1+0.1/0.05) = 1.5; both modifiers multiply to exp(-0.1);
	// rate = 1.8*exp(-0.1)*2.5/4.0 = 1.0179420952904545...
	p := Params{
		Vmax:        1.8,
		Km:          0.5,
		OptimalPH:   7.0,
		OptimalTemp: 37.0,
		PHSigma:     1.0,
		TempSigma:   5.0,
		Ki:          Float(0.05),
	}
	c := Conditions{SubstrateConc: 2.5, PH: 6.8, Temp: 35.0, InhibitorConc: Float(0.1)}

	rate := simulateOK(t, p, c)
	want := 1.0179420952904545
	if math.Abs(rate-want) > 1e-12 {
		t.Errorf("rate = %.16f, want %.16f", rate, want)
	}
}

func TestSimulate_InhibitorWithoutKi(t *testing.T) {
	p := ldhParams() // no Ki
	c := Conditions{SubstrateConc: 1.0, PH: 7.0, Temp: 37.0, InhibitorConc: Float(0.5)}

	_, err := Simulate(p, c)
	var merr *MissingParameterError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want MissingParameterError", err)
	}
	if merr.Field != "ki" {
		t.Errorf("Field = %q, want %q", merr.Field, "ki")
	}
}

func TestSimulate_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Params, *Conditions)
		wantField string
	}{
		{"negative substrate", func(p *Params, c *Conditions) { c.SubstrateConc = -1 }, "substrate_conc"},
		{"negative inhibitor", func(p *Params, c *Conditions) { c.InhibitorConc = Float(-0.1) }, "inhibitor_conc"},
		{"zero pH sigma", func(p *Params, c *Conditions) { p.PHSigma = 0 }, "pH_sigma"},
		{"negative temp sigma", func(p *Params, c *Conditions) { p.TempSigma = -5 }, "temp_sigma"},
		{"zero vmax", func(p *Params, c *Conditions) { p.Vmax = 0 }, "vmax"},
		{"negative km", func(p *Params, c *Conditions) { p.Km = -0.5 }, "km"},
		{"zero ki", func(p *Params, c *Conditions) { p.Ki = Float(0) }, "ki"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ldhParams()
			c := Conditions{SubstrateConc: 1.0, PH: 7.0, Temp: 37.0}
			tt.mutate(&p, &c)

			_, err := Simulate(p, c)
			var ierr *InvalidParameterError
			if !errors.As(err, &ierr) {
				t.Fatalf("err = %v, want InvalidParameterError", err)
			}
			if ierr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ierr.Field, tt.wantField)
			}
		})
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	p := ldhParams()
	c := Conditions{SubstrateConc: 2.5, PH: 6.8, Temp: 35.0}
	first := simulateOK(t, p, c)
	for i := 0; i < 5; i++ {
		if got := simulateOK(t, p, c); got != first {
			t.Fatalf("run %d: rate %v != first run %v", i, got, first)
		}
	}
}
