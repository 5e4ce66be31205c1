package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/splitchance/internal/bridge"
	"github.com/npratt/splitchance/internal/component/resetchance"
	"github.com/npratt/splitchance/internal/config"
	"github.com/npratt/splitchance/internal/layout"
	"github.com/npratt/splitchance/internal/layout/parser"
	"github.com/npratt/splitchance/internal/run"
	"github.com/npratt/splitchance/internal/shutdown"
	"github.com/npratt/splitchance/internal/timing"
	"github.com/npratt/splitchance/internal/tui"
)

var version = "dev"

// shutdownTimeout bounds how long serve waits for the bridge to stop.
const shutdownTimeout = 5 * time.Second

// errNoRun is returned by commands that need a run file when none is set.
var errNoRun = errors.New("no run file (use --run or paths.run in config)")

// loadConfig loads the config and applies explicitly set CLI flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed(FlagRun) {
		cfg.Paths.Run = viper.GetString(FlagRun)
	}
	if flags.Changed(FlagLayout) {
		cfg.Paths.Layout = viper.GetString(FlagLayout)
	}
	if flags.Changed(FlagWidth) {
		cfg.Display.Width = viper.GetInt(FlagWidth)
	}
	if flags.Changed(FlagShowSuccesses) {
		cfg.Component.ShowSuccesses = viper.GetBool(FlagShowSuccesses)
	}
	if flags.Changed(FlagShowAttemptDetails) {
		cfg.Component.ShowAttemptDetails = viper.GetBool(FlagShowAttemptDetails)
	}
	if flags.Changed(FlagTwoRows) {
		cfg.Component.DisplayTwoRows = viper.GetBool(FlagTwoRows)
	}
	if flags.Lookup(FlagSocketPath) != nil && flags.Changed(FlagSocketPath) {
		cfg.Paths.Socket = viper.GetString(FlagSocketPath)
	}

	// Flags bypass LoadConfig's validation.
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadRun reads the configured run file.
func loadRun(cfg *config.Config) (*run.Run, error) {
	if cfg.Paths.Run == "" {
		return nil, errNoRun
	}
	return run.Load(cfg.Paths.Run)
}

// buildLayout loads the configured layout file, or builds a single Reset
// Chance component from the component config when there is none.
func buildLayout(cfg *config.Config, logger *slog.Logger) (*layout.Layout, error) {
	if cfg.Paths.Layout != "" {
		l, err := parser.LoadLayout(cfg.Paths.Layout)
		if err != nil {
			return nil, err
		}
		for _, path := range l.Unsupported {
			logger.Debug("skipping unsupported layout component", "path", path)
		}
		if len(l.Components) == 0 {
			return nil, fmt.Errorf("layout %s has no %s component", cfg.Paths.Layout, parser.ResetChancePath)
		}
		return l, nil
	}

	s, err := cfg.ComponentSettings()
	if err != nil {
		return nil, err
	}
	return layout.New(resetchance.WithSettings(s)), nil
}

// snapshotFromFlags builds the snapshot described by --phase and --split.
func snapshotFromFlags(r *run.Run) (timing.Snapshot, error) {
	phase, err := timing.ParsePhase(viper.GetString(FlagPhase))
	if err != nil {
		return timing.Snapshot{}, err
	}
	split := viper.GetInt(FlagSplit)
	if phase == timing.Running || phase == timing.Paused {
		if split < 0 {
			split = 0
		}
		if split >= r.Len() {
			return timing.Snapshot{}, fmt.Errorf("split %d out of range (run has %d segments)", split, r.Len())
		}
	}
	return timing.NewSnapshot(r, phase, split), nil
}

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("SPLITCHANCE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "splitchance",
		Short: "Reset and success chance for speedrun splits",
		Long: `splitchance shows the probability of resetting on (or completing) the
current split of a speedrun, based on the recorded attempt history.

Without an active attempt it shows the chance of completing the whole run.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
			}
		},
	}

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .splitchance/config.yaml)")
	rootCmd.PersistentFlags().String(FlagRun, "", "Run history file (YAML)")
	rootCmd.PersistentFlags().String(FlagLayout, "", "LiveSplit layout file (XML)")
	rootCmd.PersistentFlags().Int(FlagWidth, 40, "Display width in cells")
	rootCmd.PersistentFlags().Bool(FlagShowSuccesses, false, "Show the success chance instead of the reset chance")
	rootCmd.PersistentFlags().Bool(FlagShowAttemptDetails, false, "Show the attempt counts used for the calculation")
	rootCmd.PersistentFlags().Bool(FlagTwoRows, false, "Display label and value in two rows")

	// Bind all flags to viper
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("splitchance %s\n", version)
		},
	}

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the chance for a timer state",
		Long: `Show the reset (or success) chance for the given timer phase and split.

Phases: not-running, running, paused, ended. The split index is zero-based
and only used while running or paused.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := loadRun(cfg)
			if err != nil {
				return err
			}
			l, err := buildLayout(cfg, logger)
			if err != nil {
				return err
			}
			snap, err := snapshotFromFlags(r)
			if err != nil {
				return err
			}
			logger.Debug("showing state", "phase", snap.CurrentPhase(), "components", len(l.Components))

			if viper.GetBool(FlagJSON) {
				for _, state := range l.States(snap) {
					if err := state.WriteJSON(cmd.OutOrStdout()); err != nil {
						return fmt.Errorf("encode state: %w", err)
					}
				}
				return nil
			}

			renderer, err := cfg.Renderer()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), l.Render(snap, renderer))
			return nil
		},
	}
	showCmd.Flags().String(FlagPhase, "not-running", "Timer phase")
	showCmd.Flags().Int(FlagSplit, timing.NoSplit, "Current split index (zero-based)")
	showCmd.Flags().Bool(FlagJSON, false, "Output component state as JSON")
	showCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Settings command
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "List the component settings and their current values",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			l, err := buildLayout(cfg, logger)
			if err != nil {
				return err
			}
			for _, c := range l.Components {
				writeSettingsTable(cmd.OutOrStdout(), c.Name(), c.SettingsDescription())
			}
			return nil
		},
	}

	// Summary command
	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Print per-split reset statistics for a run",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := loadRun(cfg)
			if err != nil {
				return err
			}
			writeSummary(cmd.OutOrStdout(), r)
			return nil
		},
	}

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Drive a timer interactively and watch the chance update",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("watch requires a terminal")
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := loadRun(cfg)
			if err != nil {
				return err
			}
			l, err := buildLayout(cfg, logger)
			if err != nil {
				return err
			}
			renderer, err := cfg.Renderer()
			if err != nil {
				return err
			}

			// Log to a file so output does not corrupt the display.
			if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
				return fmt.Errorf("create log dir: %w", err)
			}
			fileLog := SetupFileLogger(cfg.Paths.LogDir, logLevel, cfg.LogRotation)
			defer func() { _ = fileLog.Close() }()
			slog.SetDefault(fileLog.Logger)

			timer := timing.NewTimer(r)
			view := tui.New(timer, l, renderer,
				tui.WithRefreshInterval(cfg.Display.RefreshInterval),
				tui.WithOnQuit(func() { fileLog.Logger.Info("watch quit", "attempts", r.AttemptCount) }),
			)
			if err := view.Run(); err != nil {
				return err
			}

			if viper.GetBool(FlagSave) {
				if timer.Phase() != timing.NotRunning {
					_ = timer.Reset()
				}
				if err := run.Save(cfg.Paths.Run, r); err != nil {
					return err
				}
				fmt.Printf("Saved %d attempts to %s\n", r.AttemptCount, cfg.Paths.Run)
			}
			return nil
		},
	}
	watchCmd.Flags().Bool(FlagSave, false, "Write recorded attempts back to the run file on exit")
	watchCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve Reset Chance components over a Unix socket",
		Long: `Serve Reset Chance components to other processes over a Unix socket.

Clients create components, drive the shared timer, and read component state
as structured data or JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := loadRun(cfg)
			if err != nil {
				return err
			}
			if dir := filepath.Dir(cfg.Paths.Socket); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create socket dir: %w", err)
				}
			}

			server := bridge.NewServer(bridge.NewRegistry(), timing.NewTimer(r), cfg.Paths.Socket, logger)
			return shutdown.Run(cmd.Context(), logger, shutdownTimeout,
				server.Start,
				func(context.Context) error { return server.Stop() },
			)
		},
	}
	serveCmd.Flags().String(FlagSocketPath, "", "Unix socket path for the bridge")
	serveCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	// Register all commands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
