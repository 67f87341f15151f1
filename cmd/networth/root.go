package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/finch/networth/internal/calculation"
	"github.com/finch/networth/internal/config"
	"github.com/finch/networth/internal/service"
	"github.com/finch/networth/internal/storage"
)

// app carries what the subcommands share once flags are parsed.
type app struct {
	settingsPath string
	profilePath  string
	accountsPath string
	logLevel     string
	format       string
	days         int
	debug        bool

	settings *config.Settings
	logger   *zap.SugaredLogger
	store    *storage.FileStore
	engine   *calculation.ProjectionEngine
	svc      *service.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "networth",
		Short:         "Project net worth from snapshots, recurring cash flows, allocations and market events",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsPath, "config", "networth.yaml", "settings file (YAML)")
	pf.StringVarP(&a.profilePath, "profile", "p", "", "profile document (.yaml, .json or .toml)")
	pf.StringVar(&a.accountsPath, "accounts", "", "account balances file used for snapshot and holdings refresh")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&a.format, "format", "f", "", "output format: "+strings.Join(outputFormatNames(), ", "))
	pf.IntVarP(&a.days, "days", "d", 0, "projection horizon in days")
	pf.BoolVar(&a.debug, "debug", false, "log the per-day projection breakdown")

	root.AddCommand(
		newProjectCmd(a),
		newExampleCmd(a),
		newPlanCmd(a),
		newRecurringCmd(a),
		newValidateCmd(a),
		newAssetClassesCmd(a),
	)
	return root
}

// setup resolves settings (file, env, then flags) and wires the store, engine and service.
func (a *app) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(a.settingsPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("profile") {
		settings.ProfilePath = a.profilePath
	}
	if flags.Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		settings.Format = a.format
	}
	if flags.Changed("days") {
		settings.ProjectionDays = a.days
	}
	if a.debug {
		settings.LogLevel = "debug"
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	a.settings = settings

	logger, err := newLogger(settings.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger.Sugar()

	store, err := storage.NewFileStore(settings.ProfilePath)
	if err != nil {
		return err
	}
	a.store = store

	a.engine = calculation.NewProjectionEngine()
	a.engine.Debug = a.debug
	a.engine.SetLogger(a.logger)

	opts := []service.Option{
		service.WithLogger(a.logger),
		service.WithProjectionDays(settings.ProjectionDays),
		service.WithSnapshotMaxAge(settings.SnapshotMaxAge),
	}
	if a.accountsPath != "" {
		src := &accountsFile{path: a.accountsPath}
		opts = append(opts, service.WithAccountSource(src), service.WithSnapshotSource(src))
	}
	a.svc = service.New(store, a.engine, opts...)
	return nil
}

// newLogger builds a console logger on stderr so stdout only carries command output.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	return cfg.Build()
}

// hint adds the next step to errors a user can fix from the command line.
func hint(err error) error {
	if errors.Is(err, storage.ErrNoProfile) {
		return fmt.Errorf("%w (create one with `networth plan init`)", err)
	}
	return err
}
