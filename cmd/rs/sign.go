package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/signedurl"
)

func signCmd() *cobra.Command {
	var (
		flags   optionFlags
		html    bool
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "sign URL",
		Short: "Print a signed screenshot URL",
		Long:  "Builds a time-limited signed URL that renders a screenshot without an API key. Needs RS_SIGNING_KEY.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			if cfg.SigningKey == "" {
				return errors.New("RS_SIGNING_KEY is not set")
			}

			o, err := flags.apply(target(args[0], html))
			if err != nil {
				return err
			}

			signer := signedurl.New(cfg.SigningKey, cfg.SignerOptions()...)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), signer.Sign(o, time.Now().Add(expires)))
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&html, "html", false, "treat the argument as HTML markup")
	cmd.Flags().DurationVar(&expires, "expires", time.Hour, "how long the URL stays valid")

	return cmd
}
