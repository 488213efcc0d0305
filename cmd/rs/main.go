package main

import (
	"context"
	"log/slog"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/internal/config"
	"github.com/Render-Screenshot/rs-go/internal/paths"
	"github.com/Render-Screenshot/rs-go/internal/version"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
)

func main() {
	if files := paths.EnvFiles(); len(files) > 0 {
		_ = godotenv.Load(files...)
	}

	level := xslog.Default
	if cfg, err := config.Read(); err == nil {
		level = cfg.LogLevel
	}
	slog.SetDefault(xslog.NewLogger(os.Stderr, level).With(xslog.Version()))

	rootCmd := &cobra.Command{
		Use:          "rs",
		Short:        "RenderScreenshot from the command line",
		Version:      version.Get(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		signCmd(),
		takeCmd(),
		batchCmd(),
		cacheCmd(),
		presetsCmd(),
		webhookCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
