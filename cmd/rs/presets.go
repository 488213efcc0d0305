package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/internal/cli/style"
)

func presetsCmd() *cobra.Command {
	var devices bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List saved presets, or device profiles with --devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if devices {
				list, err := c.Preset.Devices(ctx)
				if err != nil {
					return err
				}
				for _, d := range list {
					detail := fmt.Sprintf("%dx%d @%gx", d.Width, d.Height, d.Scale)
					if d.Mobile {
						detail += " " + style.Dim.Render("mobile")
					}
					fmt.Fprintln(out, style.KV(d.ID, detail, 24))
				}
				return nil
			}

			list, err := c.Preset.List(ctx)
			if err != nil {
				return err
			}
			for _, p := range list {
				fmt.Fprintln(out, style.KV(p.ID, p.Name, 24))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&devices, "devices", false, "list device profiles instead")

	return cmd
}
