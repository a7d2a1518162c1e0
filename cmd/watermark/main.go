package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	watermark "github.com/grzesiekS/Watermark-Image"
	"github.com/grzesiekS/Watermark-Image/internal/config"
	"github.com/grzesiekS/Watermark-Image/internal/flow"
	"github.com/grzesiekS/Watermark-Image/internal/logging"
	"github.com/grzesiekS/Watermark-Image/internal/prompt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// rootCmd is the only command: it starts the interactive session.
var rootCmd = &cobra.Command{
	Use:   "watermark",
	Short: "Interactive text and image watermarking",
	Long: `Watermark manager asks which image to mark, optionally brightens it or
raises its contrast, then adds a centered text or image watermark. Images are
read from and written to the image folder (img/ by default). After every
watermark the session starts again until you decline.

Every flag can also be set with a WATERMARK_* environment variable, for
example WATERMARK_DIR=photos or WATERMARK_STRICT_RANGE=false.

Examples:
  watermark
  watermark --dir photos --ui dialog
  watermark --strict-range=false --edit-naming prefix`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMain,
}

func init() {
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "watermark: %v\n", err)
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, _ []string) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logging.Init(cfg.LogLevel)

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return fmt.Errorf("create image folder: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Debug().
		Str("dir", cfg.Dir).
		Str("ui", cfg.UI).
		Bool("strict_range", cfg.StrictRange).
		Str("edit_naming", cfg.EditNaming).
		Bool("extra_edits", cfg.ExtraEdits).
		Msg("Starting watermark manager")

	err = flow.New(cfg, newPrompter(cfg.UI), watermark.Default()).Run(ctx)
	if err != nil && ctx.Err() != nil {
		log.Debug().Err(err).Msg("Stopped by signal")
		return nil
	}
	return err
}

func newPrompter(ui string) prompt.Prompter {
	if ui == config.UIDialog {
		return prompt.NewDialog(prompt.DefaultDialogTitle)
	}
	return prompt.NewTerminal()
}

