// procedural-td opens the game window on the title screen.
//
// Usage:
//
//	procedural-td [--config path] [--seed digits] [--log-level level] [--assets dir]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/Garsondee/procedural-td/internal/config"
	"github.com/Garsondee/procedural-td/internal/game"
)

var (
	flagConfig   string
	flagSeed     string
	flagLogLevel string
	flagAssets   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "procedural-td",
	Short: "Procedural tower defence",
	Long: `Opens the game on its title screen. Type a seed (up to 8 digits) or leave
the box empty for a random map, then press Start or Enter.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&flagSeed, "seed", "", "digits to prefill the seed box with")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "directory of PNG sprite overrides; overrides config")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagAssets != "" {
		cfg.Assets.Dir = flagAssets
	}
	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "procedural-td",
		Level:           level,
	})

	g, err := game.New(cfg, game.Options{Logger: logger, Prefill: flagSeed})
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info("starting", "window", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height),
		"layout", fmt.Sprintf("%dx%d", cfg.Layout.Width, cfg.Layout.Height))
	return ebiten.RunGame(g)
}
