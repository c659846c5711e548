package main

import (
	"github.com/spf13/cobra"

	"github.com/pabonaldi/bioopti/internal/kinetics"
	"github.com/pabonaldi/bioopti/internal/render"
)

// newRateCmd builds the raw-parameter simulation command: every kinetic
// constant is supplied on the command line, no dataset involved.
func newRateCmd() *cobra.Command {
	var (
		common commonFlags
		cond   conditionFlags

		vmax        float64
		km          float64
		optimalPH   float64
		optimalTemp float64
		phSigma     float64
		tempSigma   float64
		ki          float64
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Compute a reaction rate from explicit kinetic parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := kinetics.Params{
				Vmax:        vmax,
				Km:          km,
				OptimalPH:   optimalPH,
				OptimalTemp: optimalTemp,
				PHSigma:     phSigma,
				TempSigma:   tempSigma,
				Ki:          optFlag(cmd, "ki", ki),
			}
			return runRate(params, cond.conditions(cmd), common)
		},
	}

	f := cmd.Flags()
	addConditionFlags(cmd, &cond)
	f.Float64Var(&vmax, "vmax", 0, "Maximum reaction rate Vmax in µmol/min")
	f.Float64Var(&km, "km", 0, "Michaelis constant Km in mM")
	f.Float64Var(&optimalPH, "optimal-ph", 7.0, "Enzyme's optimal pH")
	f.Float64Var(&optimalTemp, "optimal-temp", 37.0, "Enzyme's optimal temperature in °C")
	f.Float64Var(&phSigma, "ph-sigma", 1.0, "Gaussian tolerance width for pH deviation")
	f.Float64Var(&tempSigma, "temp-sigma", 5.0, "Gaussian tolerance width for temperature deviation")
	f.Float64Var(&ki, "ki", 0, "Competitive-inhibition constant Ki in mM")
	addCommonFlags(cmd, &common)
	cmd.MarkFlagRequired("vmax") //nolint:errcheck
	cmd.MarkFlagRequired("km")   //nolint:errcheck

	return cmd
}

func runRate(params kinetics.Params, cond kinetics.Conditions, common commonFlags) error {
	log := newLogger(common.verbose)

	rate, err := kinetics.Simulate(params, cond)
	if err != nil {
		return classify(err)
	}
	log.Debug().Float64("rate", rate).Msg("simulation complete")

	r, err := render.NewRenderer(common.format)
	if err != nil {
		return codeError(3, "%s", err)
	}
	out, err := r.Render(&render.Result{
		Conditions: cond,
		Params:     params,
		Rate:       rate,
		Unit:       rateUnit,
	})
	if err != nil {
		return codeError(5, "rendering result: %s", err)
	}
	return writeOutput(out, common.out)
}
