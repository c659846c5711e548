package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pabonaldi/bioopti/internal/optimize"
)

// newOptimizeCmd builds the condition-optimization command: search for the
// substrate concentration, pH and temperature that maximize a stored
// enzyme's rate.
func newOptimizeCmd() *cobra.Command {
	var (
		common   commonFlags
		organism string
		dataPath string

		seed        int64
		generations int
		population  int

		substrateMax float64
		phMin        float64
		phMax        float64
		tempMin      float64
		tempMax      float64
	)

	cmd := &cobra.Command{
		Use:   "optimize <enzyme>",
		Short: "Find the reaction conditions that maximize an enzyme's rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prob := optimize.DefaultProblem()
			prob.Substrate.Max = substrateMax
			prob.PH = optimize.Bounds{Min: phMin, Max: phMax}
			prob.Temp = optimize.Bounds{Min: tempMin, Max: tempMax}
			opts := optimize.Options{
				Seed:        seed,
				Generations: generations,
				Population:  population,
			}
			return runOptimize(args[0], organism, dataPath, prob, opts, common)
		},
	}

	f := cmd.Flags()
	f.StringVar(&organism, "organism", "", "Organism of origin, e.g. \"Homo sapiens\"")
	f.StringVar(&dataPath, "data", "", "Enzyme dataset path (JSON)")
	f.Int64Var(&seed, "seed", 0, "RNG seed; the search is deterministic per seed")
	f.IntVar(&generations, "generations", 0, "Differential-evolution generations (0 = default)")
	f.IntVar(&population, "population", 0, "Differential-evolution population size (0 = default)")
	f.Float64Var(&substrateMax, "substrate-max", 10.0, "Upper bound for substrate concentration in mM")
	f.Float64Var(&phMin, "ph-min", 4.0, "Lower bound for pH")
	f.Float64Var(&phMax, "ph-max", 9.0, "Upper bound for pH")
	f.Float64Var(&tempMin, "temp-min", 20.0, "Lower bound for temperature in °C")
	f.Float64Var(&tempMax, "temp-max", 60.0, "Upper bound for temperature in °C")
	addCommonFlags(cmd, &common)
	cmd.MarkFlagRequired("organism") //nolint:errcheck

	return cmd
}

func runOptimize(enzyme, organism, dataPath string, prob optimize.Problem, opts optimize.Options, common commonFlags) error {
	log := newLogger(common.verbose)

	cfg, err := loadConfig(common.configPath)
	if err != nil {
		return err
	}
	store, err := openStore(dataPath, cfg)
	if err != nil {
		return err
	}

	params, err := store.Get(enzyme, organism)
	if err != nil {
		return classify(err)
	}

	res, err := optimize.Maximize(params, prob, opts)
	if err != nil {
		return classify(err)
	}
	log.Debug().
		Float64("substrate", res.Conditions.SubstrateConc).
		Float64("ph", res.Conditions.PH).
		Float64("temp", res.Conditions.Temp).
		Float64("rate", res.Rate).
		Msg("optimization complete")

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return codeError(5, "encoding result: %s", err)
	}
	return writeOutput(out, common.out)
}
