// Package cli implements the ficalc command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/fipath/fi-calculator/internal/calculation"
	"github.com/fipath/fi-calculator/internal/config"
	"github.com/fipath/fi-calculator/internal/logging"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the persistent flag values.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Debug      bool
}

// app is the state shared by subcommands once the root pre-run has resolved settings.
type app struct {
	v        *viper.Viper
	settings *config.Settings
	logger   *zap.Logger
}

// newEngine returns a projection engine logging through the app logger.
func (a *app) newEngine() *calculation.ProjectionEngine {
	engine := calculation.NewProjectionEngine()
	engine.Debug = a.settings.Debug
	engine.SetLogger(a.logger.Sugar())
	return engine
}

// NewRootCommand builds the ficalc command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	a := &app{v: config.NewViper(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "ficalc",
		Short: "Financial independence projection calculator",
		Long: "ficalc projects when savings reach FIRE, Semi-FI and Coast FI targets,\n" +
			"expressed in today's dollars, and sweeps single inputs for sensitivity.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "settings file (yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&opts.LogFormat, "log-format", "console", "log format (console, json)")
	pf.BoolVar(&opts.Debug, "debug", false, "log engine internals at debug level")

	_ = a.v.BindPFlag("log.level", pf.Lookup("log-level"))
	_ = a.v.BindPFlag("log.format", pf.Lookup("log-format"))
	_ = a.v.BindPFlag("debug", pf.Lookup("debug"))

	cmd.AddCommand(
		newProjectCmd(a),
		newSensitivityCmd(a),
		newExampleCmd(),
		newFormatsCmd(),
		newServeCmd(a),
	)
	return cmd
}

func (a *app) init(opts *RootOptions) error {
	settings, err := config.LoadSettings(a.v, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		return fmt.Errorf("logger initialization failed: %w", err)
	}
	a.settings = settings
	a.logger = logger
	a.logger.Debug("settings resolved",
		zap.String("format", settings.Format),
		zap.String("output_dir", settings.OutputDir),
		zap.Bool("debug", settings.Debug),
	)
	return nil
}
