package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
// Codes: 3 = invalid input/config/dataset, 4 = enzyme not found,
// 5 = computation or remote-service failure.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func main() {
	root := &cobra.Command{
		Use:     "bioopti",
		Short:   "Simulate enzyme reaction rates under environmental conditions",
		Long:    "BioOpti predicts enzymatic reaction rates from Michaelis-Menten kinetics with Gaussian pH/temperature attenuation and optional competitive inhibition.",
		Version: version,
	}

	root.AddCommand(newRateCmd())
	root.AddCommand(newSimulateCmd())
	root.AddCommand(newLookupCmd())
	root.AddCommand(newFetchCmd())
	root.AddCommand(newOptimizeCmd())

	if err := root.Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		// cobra already printed the error
		os.Exit(1)
	}
}
