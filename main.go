package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"squircles/internal/config"
	"squircles/internal/session"
)

const (
	WindowTitle   = "Squircles"
	defaultVolume = 1.0
)

// options is everything the commands share. Flags override the config
// file, which overrides these defaults.
type options struct {
	configPath   string
	width        int
	height       int
	level        int
	seed         int64
	mute         bool
	volume       float64
	instructions string
	verbose      bool
}

var (
	opts   options
	logger = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "squircles",
		Short:         "Point-and-click mouse training game",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := zap.NewProductionConfig()
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return loadOptions(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: runPlayCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultConfigPath(), "path to the TOML config file")
	pf.IntVar(&opts.width, "width", session.DefaultWidth, "window width in pixels")
	pf.IntVar(&opts.height, "height", session.DefaultHeight, "window height in pixels")
	pf.IntVar(&opts.level, "level", 1, "level to start on (1-15)")
	pf.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one from the clock")
	pf.BoolVar(&opts.mute, "mute", false, "disable all sound")
	pf.Float64Var(&opts.volume, "volume", defaultVolume, "linear sound volume, 1 is unchanged")
	pf.StringVar(&opts.instructions, "instructions", config.DefaultInstructionsDir(), "directory of expl01.wav .. expl15.wav clips")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Open the game window (default)",
		Args:  cobra.NoArgs,
		RunE:  runPlayCmd,
	})
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadOptions merges the config file under any flag set explicitly.
func loadOptions(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "width", &opts.width, fileCfg.Window.Width)
	applyConfig(cmd, "height", &opts.height, fileCfg.Window.Height)
	applyConfig(cmd, "mute", &opts.mute, fileCfg.Audio.Mute)
	applyConfig(cmd, "volume", &opts.volume, fileCfg.Audio.Volume)
	applyConfig(cmd, "instructions", &opts.instructions, fileCfg.Audio.Instructions)
	applyConfig(cmd, "level", &opts.level, fileCfg.Game.Level)
	applyConfig(cmd, "seed", &opts.seed, fileCfg.Game.Seed)
	return validateOptions(opts)
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func validateOptions(o options) error {
	if o.width <= 0 || o.height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", o.width, o.height)
	}
	if o.volume < 0 {
		return fmt.Errorf("volume must not be negative, got %v", o.volume)
	}
	return nil
}

func runPlayCmd(_ *cobra.Command, _ []string) error {
	game, err := NewGame(opts, logger)
	if err != nil {
		return err
	}
	return runWindow(game, opts)
}
