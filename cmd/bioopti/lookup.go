package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newLookupCmd builds the parameter-lookup command: resolve an enzyme and
// print its stored record without simulating anything.
func newLookupCmd() *cobra.Command {
	var (
		common   commonFlags
		organism string
		dataPath string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "lookup [enzyme]",
		Short: "Print the stored kinetic parameters for an enzyme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return runList(dataPath, common)
			}
			if len(args) != 1 {
				return codeError(3, "enzyme name required unless --list is given")
			}
			return runLookup(args[0], organism, dataPath, common)
		},
	}

	f := cmd.Flags()
	f.StringVar(&organism, "organism", "", "Organism of origin, e.g. \"Homo sapiens\"")
	f.StringVar(&dataPath, "data", "", "Enzyme dataset path (JSON)")
	f.BoolVar(&list, "list", false, "List all dataset keys instead of looking one up")
	addCommonFlags(cmd, &common)

	return cmd
}

func runLookup(enzyme, organism, dataPath string, common commonFlags) error {
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

	out, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return codeError(5, "encoding parameters: %s", err)
	}
	return writeOutput(out, common.out)
}

func runList(dataPath string, common commonFlags) error {
	cfg, err := loadConfig(common.configPath)
	if err != nil {
		return err
	}
	store, err := openStore(dataPath, cfg)
	if err != nil {
		return err
	}

	keys := store.Keys()
	if common.format == "json" {
		out, err := json.MarshalIndent(keys, "", "  ")
		if err != nil {
			return codeError(5, "encoding keys: %s", err)
		}
		return writeOutput(out, common.out)
	}
	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "- %s\n", k)
	}
	return writeOutput([]byte(sb.String()), common.out)
}
