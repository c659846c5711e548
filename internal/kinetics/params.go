// Package kinetics computes enzymatic reaction rates from Michaelis-Menten
// kinetics with Gaussian pH/temperature attenuation and optional competitive
// inhibition. All computations are pure functions; any number of calls may
// run concurrently on independent inputs.
package kinetics

// Params holds the kinetic and environmental constants for one
// enzyme/organism pair, as found in literature or a curated dataset.
// Vmax and substrate/inhibitor concentrations share one unit convention
// (conventionally µmol/min and mM); the package never converts units.
type Params struct {
	// Vmax is the maximum reaction rate at saturating substrate.
	Vmax float64 `json:"vmax" validate:"gt=0"`
	// Km is the Michaelis constant: the substrate concentration at
	// which the rate is half of Vmax.
	Km float64 `json:"km" validate:"gt=0"`
	// OptimalPH is the pH at which the enzyme is most active.
	OptimalPH float64 `json:"optimal_pH"`
	// OptimalTemp is the temperature (°C) at which the enzyme is most active.
	OptimalTemp float64 `json:"optimal_temp"`
	// PHSigma is the Gaussian tolerance width for pH deviation.
	PHSigma float64 `json:"pH_sigma" validate:"gt=0"`
	// TempSigma is the Gaussian tolerance width for temperature deviation.
	TempSigma float64 `json:"temp_sigma" validate:"gt=0"`
	// Ki is the competitive-inhibition constant. Nil means no inhibition
	// data exists for this enzyme; it is required only when an inhibitor
	// concentration is supplied at simulation time.
	Ki *float64 `json:"ki,omitempty" validate:"omitempty,gt=0"`
}

// Conditions describes the experimental context for one simulation call.
type Conditions struct {
	// SubstrateConc is the substrate concentration [S].
	SubstrateConc float64 `json:"substrate_conc" validate:"gte=0"`
	// PH is the current pH of the system.
	PH float64 `json:"pH"`
	// Temp is the current temperature in °C.
	Temp float64 `json:"temp"`
	// InhibitorConc is the competitive-inhibitor concentration [I].
	// Nil or a value of exactly 0 both mean "no inhibitor".
	InhibitorConc *float64 `json:"inhibitor_conc,omitempty" validate:"omitempty,gte=0"`
}

// Float returns a pointer to v, for filling the optional fields above.
func Float(v float64) *float64 { return &v }
