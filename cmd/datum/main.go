package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/datum/internal/config"
	"github.com/username/datum/internal/logging"
	"github.com/username/datum/pkg/datum"
	"go.uber.org/zap"
)

var (
	configPath string
	cfg        = config.Default()
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "datum",
		Short:         "Date arithmetic and formatting",
		Long:          "Shift, bound, parse and format calendar dates from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			logger, err = logging.New(cfg.Log.File, cfg.Log.Level)
			if err != nil {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: datum.yaml on the search path)")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(nowCmd())
	rootCmd.AddCommand(shiftCmd())
	rootCmd.AddCommand(boundsCmd())
	rootCmd.AddCommand(scanCmd())

	return rootCmd
}

// parseDatum accepts YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss; no arguments means now
func parseDatum(args []string) (*datum.Datum, error) {
	d := datum.NewWithClock(cfg.Clock.GetClock())
	if len(args) == 0 {
		return d, nil
	}

	var err error
	if len(args[0]) == len(datum.ISODateLayout) {
		_, err = d.FromISODateString(args[0])
	} else {
		_, err = d.FromISOLongDate(args[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	logger.Debug("Parsed date argument",
		zap.String("input", args[0]),
		zap.Time("value", d.Value()))

	return d, nil
}
