package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/nwalden/bigclock/internal/config"
	"github.com/nwalden/bigclock/internal/shutdown"
	"github.com/nwalden/bigclock/internal/timer"
	"github.com/nwalden/bigclock/internal/tui"
)

var version = "dev"

// applyFlagOverrides copies explicitly set CLI flags onto the loaded config.
// Flags left at their defaults do not clobber file or env settings.
func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) error {
	if viper.GetBool(FlagWhite) && viper.GetBool(FlagBlack) {
		return fmt.Errorf("--white and --black are mutually exclusive")
	}

	if flags.Changed(FlagFocus) {
		cfg.Display.Focus = viper.GetBool(FlagFocus)
	}
	if flags.Changed(FlagBold) {
		cfg.Display.Bold = viper.GetBool(FlagBold)
	}
	if viper.GetBool(FlagWhite) {
		cfg.Display.Color = config.ColorWhite
	}
	if viper.GetBool(FlagBlack) {
		cfg.Display.Color = config.ColorBlack
	}
	if flags.Changed(FlagNoBell) {
		cfg.Display.Bell = !viper.GetBool(FlagNoBell)
	}
	return nil
}

// buildEngine selects the timer mode from the mode flags. Pomodoro wins over
// stopwatch, stopwatch over countdown, and with no mode flag the clock runs.
func buildEngine(cfg *config.Config) (timer.Engine, string, error) {
	switch {
	case viper.GetString(FlagPomodoro) != "":
		work, brk := cfg.Pomodoro.WorkMinutes, cfg.Pomodoro.BreakMinutes
		if spec := viper.GetString(FlagPomodoro); spec != "default" {
			var err error
			work, brk, err = timer.ParsePomodoro(spec)
			if err != nil {
				return nil, "", fmt.Errorf("invalid --pomodoro value: %w", err)
			}
		}
		return timer.NewPomodoro(work, brk), "pomodoro", nil

	case viper.GetBool(FlagStopwatch):
		return timer.NewStopwatch(time.Now()), "stopwatch", nil

	case viper.GetString(FlagTimer) != "":
		total, err := timer.ParseDuration(viper.GetString(FlagTimer))
		if err != nil {
			return nil, "", fmt.Errorf("invalid --timer value: %w", err)
		}
		if total <= 0 {
			return nil, "", fmt.Errorf("invalid --timer value: duration must be positive")
		}
		return timer.NewCountdown(total, "Countdown Timer"), "timer", nil

	default:
		return timer.NewClock(), "clock", nil
	}
}

func run(cmd *cobra.Command, logger *slog.Logger, logLevel *slog.LevelVar) error {
	if viper.GetBool(FlagVerbose) {
		logLevel.Set(slog.LevelDebug)
	}

	cfg, err := config.LoadConfig(viper.GetViper())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := applyFlagOverrides(cmd.Flags(), cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logging goes to a file or nowhere. Writing to stderr would corrupt
	// the display once the terminal is in raw mode.
	result := SessionLogger(viper.GetString(FlagDebugLog), logLevel, cfg.LogRotation)
	defer func() { _ = result.Close() }()
	logger = result.Logger
	slog.SetDefault(logger)

	engine, mode, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bigclock requires an interactive terminal")
	}

	logger.Info("bigclock starting",
		"version", version,
		"mode", mode,
		"focus", cfg.Display.Focus,
		"bold", cfg.Display.Bold,
	)

	ctx, stop := shutdown.WithSignals(cmd.Context())
	defer stop()

	if err := tui.New(engine, cfg.Display).Run(ctx); err != nil {
		return fmt.Errorf("run display: %w", err)
	}

	// Leave the shell prompt below the final frame.
	fmt.Println()
	logger.Info("bigclock stopped", "mode", mode)
	return nil
}

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("BIGCLOCK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:     "bigclock",
		Short:   "A big terminal clock with stopwatch, countdown and Pomodoro modes",
		Version: version,
		Long: `bigclock renders the current time as large box-drawing digits and
redraws it in place once a second. Mode flags switch it into a stopwatch,
a countdown timer, or a Pomodoro work/break cycle.

While a stopwatch, timer or Pomodoro is running, press q to pause or
resume, and r to reset the stopwatch. Ctrl+C exits and restores the
terminal.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, logger, logLevel)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolP(FlagFocus, "f", false, "Hide labels and markers, digits only")
	flags.BoolP(FlagBold, "b", false, "Use heavy box-drawing glyphs")
	flags.Bool(FlagWhite, false, "Force white digits and labels")
	flags.Bool(FlagBlack, false, "Force black digits and labels")
	flags.Bool(FlagNoBell, false, "Disable the terminal bell on completion")
	flags.BoolP(FlagStopwatch, "s", false, "Run a stopwatch")
	flags.StringP(FlagTimer, "t", "", "Run a countdown (SS, MM:SS or HH:MM:SS)")
	flags.StringP(FlagPomodoro, "p", "", `Run a Pomodoro cycle (WORK,BREAK minutes, or "default")`)
	flags.String(FlagConfig, "", "Config file path (default: ~/.config/bigclock/config.yaml)")
	flags.String(FlagDebugLog, "", "Write debug logs to this file")
	flags.Bool(FlagVerbose, false, "Enable verbose (debug) logging")

	flags.VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
