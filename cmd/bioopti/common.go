package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pabonaldi/bioopti/internal/config"
	"github.com/pabonaldi/bioopti/internal/dataset"
	"github.com/pabonaldi/bioopti/internal/kinetics"
)

// rateUnit is the unit convention for Vmax throughout the default datasets.
const rateUnit = "umol/min"

// commonFlags are shared by every subcommand.
type commonFlags struct {
	format     string
	out        string
	configPath string
	verbose    bool
}

func addCommonFlags(cmd *cobra.Command, flags *commonFlags) {
	f := cmd.Flags()
	f.StringVar(&flags.format, "format", "json", "Output format: json or md")
	f.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	f.StringVar(&flags.configPath, "config", config.DefaultConfigPath(), "Config file path")
	f.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging on stderr")
}

// conditionFlags hold the reaction conditions common to the simulation
// commands. The inhibitor flag is optional: presence is detected through
// cobra's Changed tracking, not a sentinel value.
type conditionFlags struct {
	substrate float64
	ph        float64
	temp      float64
	inhibitor float64
}

func addConditionFlags(cmd *cobra.Command, flags *conditionFlags) {
	f := cmd.Flags()
	f.Float64Var(&flags.substrate, "substrate", 1.0, "Substrate concentration [S] in mM")
	f.Float64Var(&flags.ph, "ph", 7.0, "Current pH")
	f.Float64Var(&flags.temp, "temp", 37.0, "Current temperature in °C")
	f.Float64Var(&flags.inhibitor, "inhibitor", 0, "Competitive-inhibitor concentration [I] in mM")
}

// conditions builds the engine input, treating an unset inhibitor flag as
// absent rather than zero.
func (cf conditionFlags) conditions(cmd *cobra.Command) kinetics.Conditions {
	cond := kinetics.Conditions{
		SubstrateConc: cf.substrate,
		PH:            cf.ph,
		Temp:          cf.temp,
	}
	if cmd.Flags().Changed("inhibitor") {
		cond.InhibitorConc = kinetics.Float(cf.inhibitor)
	}
	return cond
}

// optFlag returns a pointer to the flag value when the user set it, nil
// otherwise.
func optFlag(cmd *cobra.Command, name string, value float64) *float64 {
	if cmd.Flags().Changed(name) {
		return kinetics.Float(value)
	}
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

// loadConfig reads the TOML config; a missing file yields the zero config.
func loadConfig(path string) (config.FileConfig, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.FileConfig{}, codeError(3, "loading config: %s", err)
	}
	return cfg, nil
}

// resolveDatasetPath applies the flag > config > default precedence.
func resolveDatasetPath(flagPath string, cfg config.FileConfig) string {
	if flagPath != "" {
		return flagPath
	}
	if cfg.Dataset.Path != nil {
		return *cfg.Dataset.Path
	}
	return config.DefaultDatasetPath()
}

// openStore loads the enzyme dataset for the lookup-based commands.
func openStore(flagPath string, cfg config.FileConfig) (*dataset.Store, error) {
	store, err := dataset.Load(resolveDatasetPath(flagPath, cfg))
	if err != nil {
		return nil, codeError(3, "loading dataset: %s", err)
	}
	return store, nil
}

// classify maps domain errors onto exit codes: caller-input problems exit
// 3, unresolved enzymes exit 4, anything else exits 5.
func classify(err error) error {
	var nf *dataset.NotFoundError
	if errors.As(err, &nf) {
		return codeError(4, "%s", err)
	}
	var ie *kinetics.InvalidParameterError
	var me *kinetics.MissingParameterError
	if errors.As(err, &ie) || errors.As(err, &me) {
		return codeError(3, "%s", err)
	}
	return codeError(5, "%s", err)
}

// writeOutput writes rendered bytes to stdout or to --out.
func writeOutput(data []byte, outPath string) error {
	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return codeError(3, "writing output: %s", err)
	}
	return nil
}
