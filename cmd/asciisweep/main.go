package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/asciisweep/internal/art"
	"github.com/san-kum/asciisweep/internal/build"
	"github.com/san-kum/asciisweep/internal/config"
	"github.com/san-kum/asciisweep/internal/logging"
	"github.com/san-kum/asciisweep/internal/sweep"
	"github.com/san-kum/asciisweep/internal/viz"
	"github.com/spf13/cobra"
)

// main executes the root command and exits with status 1 if it returns an error.
func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:          "asciisweep",
		Short:        "animate a color sweep across ascii art",
		Version:      build.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, cfg)
		},
	}

	rootCmd.Flags().BoolVarP(&cfg.Forever, "forever", "f", false, "run the animation forever")
	rootCmd.Flags().StringVarP(&cfg.ArtPath, "art", "a", cfg.ArtPath, "ascii art file")
	rootCmd.Flags().StringVarP(&cfg.Theme, "theme", "t", cfg.Theme, "palette theme")
	rootCmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "random seed (0 = random)")
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (none, trace, debug, info, warn, error)")
	rootCmd.Flags().StringVar(&cfg.LogFile, "log-file", "", "append logs to file instead of stderr")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list palette themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListThemes() {
				th, err := config.GetTheme(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %v\n", name, th.Incoming)
			}
			return nil
		},
	}

	rootCmd.AddCommand(themesCmd)
	return rootCmd
}

func runSweep(cmd *cobra.Command, cfg *config.Config) error {
	closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		return err
	}
	pal, err := cfg.Palettes()
	if err != nil {
		return err
	}

	img, err := art.Load(cfg.ArtPath)
	if err != nil {
		if errors.Is(err, art.ErrUnreadable) {
			// Nothing was acquired yet; report and exit cleanly.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			log.Debug().Err(err).Str("path", cfg.ArtPath).Msg("art not loaded")
			return nil
		}
		return err
	}

	log.Debug().
		Str("art", cfg.ArtPath).
		Int("height", img.Height()).
		Int("width", img.Width()).
		Bool("forever", cfg.Forever).
		Str("theme", cfg.Theme).
		Msg("starting sweep")

	stats, err := viz.Run(cmd.Context(), img, pal, viz.Options{
		Forever: cfg.Forever,
		Delay:   cfg.FrameDelay(),
		Step:    cfg.Step,
		Rand:    sweep.NewSource(cfg.Seed),
	})
	if err != nil {
		return err
	}

	log.Debug().
		Int("frames", stats.Frames).
		Int("rotations", stats.Rotations).
		Int("passes", stats.Passes).
		Bool("stopped", stats.Stopped).
		Msg("sweep finished")
	return nil
}
