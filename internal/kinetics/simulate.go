package kinetics

import "math"

// Simulate computes the reaction rate for the given enzyme parameters and
// reaction conditions:
//
//  1. Independent Gaussian attenuation factors in (0, 1] penalize pH and
//     temperature deviation from the enzyme's optimum. At both optima the
//     factors are exactly 1.
//  2. Competitive inhibition raises the effective Km:
//     kmEff = km * (1 + [I]/Ki). An inhibitor concentration of 0 (or
//     absent) leaves Km unchanged.
//  3. Michaelis-Menten saturation: rate = vmaxEff * [S] / (kmEff + [S]).
//
// The result is always in [0, Vmax] for valid inputs, and 0 when the
// substrate concentration is 0. Attenuation models the symmetric loss of
// catalytic efficiency away from the optimum; it does not model
// irreversible denaturation.
//
// Errors: InvalidParameterError for out-of-domain numeric inputs,
// MissingParameterError when an inhibitor concentration is supplied but
// params.Ki is absent. Every failure is a caller-input problem; there is
// no transient condition to retry.
func Simulate(params Params, cond Conditions) (float64, error) {
	if err := params.Validate(); err != nil {
		return 0, err
	}
	if err := cond.Validate(); err != nil {
		return 0, err
	}

	kmEff := params.Km
	if cond.InhibitorConc != nil && *cond.InhibitorConc > 0 {
		if params.Ki == nil {
			return 0, &MissingParameterError{Field: "ki"}
		}
		kmEff = params.Km * (1 + *cond.InhibitorConc / *params.Ki)
	}

	phFactor := gaussian(cond.PH, params.OptimalPH, params.PHSigma)
	tempFactor := gaussian(cond.Temp, params.OptimalTemp, params.TempSigma)
	vmaxEff := params.Vmax * phFactor * tempFactor

	// kmEff > 0 always, so [S] = 0 yields 0 without a division by zero.
	return vmaxEff * cond.SubstrateConc / (kmEff + cond.SubstrateConc), nil
}

// gaussian is the bell-shaped falloff exp(-(x-mu)^2 / (2 sigma^2)).
func gaussian(x, mu, sigma float64) float64 {
	d := x - mu
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}
