package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/goobj/internal/config"
	"github.com/philipparndt/goobj/internal/logger"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	configPath string
	overrides  config.Overrides
}

// cfg is populated before any subcommand runs
var cfg = config.Default()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "goobj",
		Short: "A CLI tool for inspecting Wavefront OBJ files",
		Long: `goobj parses Wavefront OBJ files, triangulates their faces and reports
counts, dimensions, surface area and edge measurements. Faces with more than
three corners are fan triangulated.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			overrides := opts.overrides
			overrides.Count = changedInt(cmd, "count")
			overrides.Precision = changedInt(cmd, "precision")

			loaded, err := config.Load(opts.configPath, overrides)
			if err != nil {
				return err
			}
			cfg = loaded

			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger.Debug("configuration loaded",
				zap.String("level", cfg.Logging.Level),
				zap.Int("count", cfg.Report.Count),
				zap.Int("precision", cfg.Report.Precision))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: search ./"+config.FileName+" and the user config dir)")
	flags.BoolVar(&opts.overrides.Debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.overrides.LogFile, "log-file", "", "Also write logs to this file (rotated)")
	flags.Int("precision", config.Default().Report.Precision, "Decimals for coordinates and lengths (overrides config)")

	rootCmd.AddCommand(
		newInfoCmd(),
		newTrianglesCmd(),
		newEdgesCmd(),
		newMeasureCmd(),
		newObjectsCmd(),
		newValidateCmd(),
		newWatchCmd(),
		newConfigCmd(),
	)

	return rootCmd
}

// changedInt returns the value of an int flag the user set explicitly, or
// nil when the flag is absent or left at its default
func changedInt(cmd *cobra.Command, name string) *int {
	flags := cmd.Flags()
	if !flags.Changed(name) {
		return nil
	}
	value, err := flags.GetInt(name)
	if err != nil {
		return nil
	}
	return &value
}

// loadError reports an OBJ file that could not be read or parsed
type loadError struct {
	filename string
	err      error
}

func (e *loadError) Error() string {
	return fmt.Sprintf("%s: %v", e.filename, e.err)
}

func (e *loadError) Unwrap() error {
	return e.err
}

// loadModel parses filename, logging parser diagnostics under "parser"
func loadModel(filename string) (*obj.Model, error) {
	model, err := obj.ParseFile(filename, obj.WithLogger(logger.Named("parser")))
	if err != nil {
		return nil, &loadError{filename: filename, err: err}
	}
	return model, nil
}

// printError writes err the way every goobj command reports failures
func printError(w io.Writer, err error) {
	var le *loadError
	if errors.As(err, &le) {
		fmt.Fprintf(w, "Error parsing OBJ file: %v\n", le)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}
