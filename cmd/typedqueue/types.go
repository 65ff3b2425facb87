package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type names scripts may declare",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.reg.Names() {
				spec, err := a.reg.Lookup(name)
				if err != nil {
					return err
				}
				if spec.Name() == name {
					fmt.Fprintf(out, "%-14s %s\n", name, spec.Kind())
				} else {
					fmt.Fprintf(out, "%-14s %s (alias of %s)\n", name, spec.Kind(), spec.Name())
				}
			}
			return nil
		},
	}
}
