// Package cli implements the shade command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lucidstyle/shade/internal/config"
	"github.com/lucidstyle/shade/internal/logging"
)

var (
	flagConfig   string
	flagLogLevel string
	flagNoColor  bool

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shade",
	Short: "Derive readable theme colors from a background",
	Long: `shade computes a readable foreground, border, hover, caption and link
color from a background color (and optional accent) using an HSL
lightness threshold, and can emit the result as CSS, terminal swatches
or a live preview.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		if flagNoColor {
			cfg.NoColor = true
		}

		logger, err = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the shade command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
