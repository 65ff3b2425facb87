package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-typedqueue/pkg/script"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		parallelism int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "run SCRIPT...",
		Short: "Execute queue scripts and print each step",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runnerCfg := a.cfg.Runner
			if cmd.Flags().Changed("parallelism") {
				runnerCfg.Parallelism = parallelism
			}

			scripts := make([]*script.Script, 0, len(args))
			for _, path := range args {
				s, err := script.Load(path)
				if err != nil {
					return err
				}
				scripts = append(scripts, s)
			}

			a.log.Debug("running scripts", zap.Int("count", len(scripts)), zap.Int("parallelism", runnerCfg.Parallelism))
			results, err := script.NewRunner(a.reg, a.log, runnerCfg).RunAll(cmd.Context(), scripts)

			out := cmd.OutOrStdout()
			if asJSON {
				if werr := writeJSON(out, results); werr != nil {
					return werr
				}
			} else {
				writeText(out, results)
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&parallelism, "parallelism", "p", 0, "scripts to run at once (0 = unlimited)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func writeJSON(w io.Writer, results []*script.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeText(w io.Writer, results []*script.Result) {
	for _, res := range results {
		if res == nil {
			continue
		}
		fmt.Fprintf(w, "== %s (%s)\n", res.Name, res.Type)
		for i, s := range res.Steps {
			switch {
			case s.Failed():
				fmt.Fprintf(w, "%3d %-8s error: %s\n", i, s.Op, s.Err)
			case !s.OK:
				fmt.Fprintf(w, "%3d %-8s (none)\n", i, s.Op)
			default:
				fmt.Fprintf(w, "%3d %-8s %v\n", i, s.Op, s.Value)
			}
		}
		fmt.Fprintf(w, "final: %v\n", res.Final)
	}
}
