package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/netrelease/sn-releases/internal/config"
	"github.com/netrelease/sn-releases/internal/exitcodes"
	"github.com/netrelease/sn-releases/internal/releases"
	"github.com/netrelease/sn-releases/internal/ui"
)

// Version information - set via -ldflags during build
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sn-releases",
	Short: "Resolve and fetch network binary releases",
	Long: "Find the latest published version of a network binary and download its " +
		"platform-specific archive from the distribution host.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch flagOutput {
		case ui.FormatText, ui.FormatJSON, ui.FormatYAML:
		default:
			return exitcodes.InvalidArgsErrorf("unknown output format %q (want text, json or yaml)", flagOutput)
		}

		ui.InitGlobal(ui.Config{
			NoColor: flagNoColor,
			Quiet:   flagQuiet,
			Debug:   flagDebug,
		})
		// lipgloss and bubbles read NO_COLOR themselves.
		if flagNoColor {
			os.Setenv("NO_COLOR", "1")
		}
		return nil
	},
}

var (
	flagConfig  string
	flagOutput  string
	flagQuiet   bool
	flagDebug   bool
	flagNoColor bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file (default $"+config.EnvConfigFile+")")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", ui.FormatText, "Output format: json|yaml|text")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Quiet mode: no progress bar or warnings")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "Debug output: log requests and matched tags")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI colors")
}

// silentErr marks an error that has already been reported to the user.
type silentErr struct{ error }

func (e silentErr) Unwrap() error { return e.error }

// shutdownSignals cancel the command context so downloads stop cleanly.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var se silentErr
		if !errors.As(err, &se) {
			getPrinter().PrintError(ui.ErrorMessage{Problem: err.Error(), Hints: hintsFor(err)})
		}
		stop()
		exitcodes.Exit(exitcodes.CodeForError(err))
	}
}

// loadCfg reads defaults, the config file and env via internal/config.
func loadCfg() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, exitcodes.WrapError(exitcodes.PreconditionFailed, "failed to load config", err)
	}
	return cfg, nil
}

// newRepository builds the production Repository; tests replace it.
var newRepository = func(cfg config.Config, p ui.Printer) releases.Repository {
	rc := cfg.Releases()
	rc.Logger = printerLogger{p: p, debug: flagDebug, quiet: flagQuiet}
	return releases.New(rc)
}

// repositoryFromFlags loads config and builds the Repository for a command.
func repositoryFromFlags() (releases.Repository, config.Config, ui.Printer, error) {
	p := getPrinter()
	cfg, err := loadCfg()
	if err != nil {
		return nil, config.Config{}, p, err
	}
	return newRepository(cfg, p), cfg, p, nil
}
