package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/client"
	"github.com/Render-Screenshot/rs-go/internal/cli/style"
	"github.com/Render-Screenshot/rs-go/screenshot"
)

func takeCmd() *cobra.Command {
	var (
		flags       optionFlags
		outDir      string
		concurrency int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "take URL...",
		Short: "Render screenshots and save them to disk",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			opts := make([]screenshot.Options, len(args))
			for i, arg := range args {
				if opts[i], err = flags.apply(screenshot.URL(arg)); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()

			if asJSON {
				for _, o := range opts {
					res, err := c.Screenshot.TakeJSON(ctx, o)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, style.KV(res.ID, res.URL, 24))
				}
				return nil
			}

			images, err := c.Screenshot.TakeAll(ctx, opts, concurrency)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", outDir, err)
			}
			for i, img := range images {
				path := filepath.Join(outDir, fileName(i, args[i], img))
				if err := os.WriteFile(path, img.Data, 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				line := style.OK.Render("saved") + " " + path
				if img.Cached {
					line += " " + style.Dim.Render("(cached)")
				}
				fmt.Fprintln(out, line)
			}
			if rl := c.RateLimit(); rl != nil {
				fmt.Fprintln(out, style.Dim.Render(fmt.Sprintf("%d/%d requests left, resets in %s", rl.Remaining, rl.Limit, rl.Reset)))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory to write images to")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", client.DefaultConcurrency, "requests in flight")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print hosted URLs instead of downloading")

	return cmd
}

var extensions = map[string]string{
	"image/png":       ".png",
	"image/jpeg":      ".jpeg",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// fileName derives "<index>-<host>.<ext>" from the target and content type.
func fileName(i int, target string, img *client.Image) string {
	name := "screenshot"
	if u, err := url.Parse(target); err == nil && u.Hostname() != "" {
		name = strings.ReplaceAll(u.Hostname(), ".", "-")
	}

	ext := ".png"
	mediaType, _, _ := strings.Cut(img.ContentType, ";")
	if e, ok := extensions[strings.TrimSpace(mediaType)]; ok {
		ext = e
	}
	return strconv.Itoa(i+1) + "-" + name + ext
}
