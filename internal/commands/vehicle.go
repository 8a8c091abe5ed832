package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gaborage/stmtkit/vehicle"
)

// NewVehicleCommand creates the vehicle command
func NewVehicleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle [family]",
		Short: "Build a vehicle and engine from one family",
		Long: `Builds a vehicle and its engine using the factory of the given family.
Every family is built in turn when none is given.`,
		Example: `  stmtkit vehicle electric
  stmtkit vehicle`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: vehicle.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			families := vehicle.Families()
			if len(args) == 1 {
				families = args
			}
			return runVehicle(cmd.OutOrStdout(), families)
		},
	}

	return cmd
}

func runVehicle(w io.Writer, families []string) error {
	for i, family := range families {
		factory, err := vehicle.Lookup(family)
		if err != nil {
			return err
		}

		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Building %s vehicle:\n", family); err != nil {
			return err
		}
		if err := vehicle.Build(factory, w); err != nil {
			return err
		}
	}
	return nil
}
