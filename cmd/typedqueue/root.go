package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-typedqueue/pkg/logger"
	"github.com/huynhanx03/go-typedqueue/pkg/settings"
	"github.com/huynhanx03/go-typedqueue/pkg/typespec"
)

type app struct {
	configPath string
	cfg        *settings.Config
	log        *zap.Logger
	reg        *typespec.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "typedqueue",
		Short:         "Run scripts against type-constrained FIFO queues",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(newRunCmd(a), newTypesCmd(a))
	return root
}

func (a *app) init() error {
	cfg := settings.Default()
	if a.configPath != "" {
		loaded, err := settings.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := logger.NewWithWriter(cfg.Logger, os.Stderr)
	if err != nil {
		return err
	}

	reg := typespec.NewRegistry()
	for _, t := range cfg.Types {
		if err := reg.Alias(t.Alias, t.Name); err != nil {
			return errors.WithMessage(err, "config types")
		}
	}

	a.cfg, a.log, a.reg = cfg, log, reg
	return nil
}
