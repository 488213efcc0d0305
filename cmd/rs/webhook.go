package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/internal/cli/style"
	"github.com/Render-Screenshot/rs-go/internal/xcontext"
	"github.com/Render-Screenshot/rs-go/internal/xhttp/middleware"
	"github.com/Render-Screenshot/rs-go/internal/xslog"
	"github.com/Render-Screenshot/rs-go/webhook"
)

var errInvalidSignature = errors.New("invalid webhook signature")

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Verify, sign, parse and receive webhook deliveries",
	}
	cmd.AddCommand(webhookVerifyCmd(), webhookSignCmd(), webhookParseCmd(), webhookListenCmd())
	return cmd
}

func secretFlag(cmd *cobra.Command, secret *string) {
	cmd.Flags().StringVar(secret, "secret", "", "webhook secret (default $RS_WEBHOOK_SECRET)")
}

func resolveSecret(flag, fromEnv string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if fromEnv != "" {
		return fromEnv, nil
	}
	return "", errors.New("pass --secret or set RS_WEBHOOK_SECRET")
}

func webhookVerifyCmd() *cobra.Command {
	var (
		signature string
		timestamp string
		secret    string
		tolerance time.Duration
	)

	cmd := &cobra.Command{
		Use:   "verify [FILE|-]",
		Short: "Check a delivery's signature; exits non-zero when invalid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			key, err := resolveSecret(secret, cfg.Webhook.Secret)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("tolerance") {
				tolerance = cfg.Webhook.Tolerance
			}

			payload, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if !webhook.Verify(payload, signature, timestamp, key, webhook.WithTolerance(tolerance)) {
				fmt.Fprintln(cmd.OutOrStdout(), style.Fail.Render("invalid"))
				return errInvalidSignature
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK.Render("valid"))
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "X-Webhook-Signature header value")
	cmd.Flags().StringVar(&timestamp, "timestamp", "", "X-Webhook-Timestamp header value")
	cmd.Flags().DurationVar(&tolerance, "tolerance", webhook.DefaultTolerance, "accepted clock drift")
	secretFlag(cmd, &secret)
	_ = cmd.MarkFlagRequired("signature")
	_ = cmd.MarkFlagRequired("timestamp")

	return cmd
}

func webhookSignCmd() *cobra.Command {
	var (
		secret    string
		timestamp int64
	)

	cmd := &cobra.Command{
		Use:   "sign [FILE|-]",
		Short: "Print signature headers for a payload, for testing receivers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			key, err := resolveSecret(secret, cfg.Webhook.Secret)
			if err != nil {
				return err
			}

			payload, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			if timestamp == 0 {
				timestamp = time.Now().Unix()
			}
			ts := strconv.FormatInt(timestamp, 10)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", webhook.HeaderSignature, webhook.Sign(payload, ts, key))
			fmt.Fprintf(out, "%s: %s\n", webhook.HeaderTimestamp, ts)
			return nil
		},
	}

	cmd.Flags().Int64Var(&timestamp, "timestamp", 0, "unix timestamp to sign with (default now)")
	secretFlag(cmd, &secret)

	return cmd
}

func webhookParseCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse [FILE|-]",
		Short: "Print the normalized form of a delivery body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var opts []webhook.Option
			if strict {
				opts = append(opts, webhook.WithStrict())
			}
			event, err := webhook.Parse(payload, opts...)
			if err != nil {
				return err
			}

			enc := go_json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(event)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "fail on malformed bodies instead of filling defaults")

	return cmd
}

func webhookListenCmd() *cobra.Command {
	var (
		addr   string
		path   string
		secret string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run a local receiver that verifies and prints deliveries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			key, err := resolveSecret(secret, cfg.Webhook.Secret)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Webhook.Addr
			}

			opts := []webhook.Option{webhook.WithTolerance(cfg.Webhook.Tolerance)}
			if strict {
				opts = append(opts, webhook.WithStrict())
			}

			var mu sync.Mutex
			out := cmd.OutOrStdout()
			printEvent := func(ctx context.Context, e webhook.Event) error {
				mu.Lock()
				defer mu.Unlock()
				status := "ok"
				if e.Data.Error != nil {
					status = "failed"
				}
				line := style.Status(status).Render(string(e.Type))
				if id, ok := xcontext.GetDeliveryID(ctx); ok {
					line += " " + style.Dim.Render(id)
				}
				if id, ok := xcontext.GetRequestID(ctx); ok {
					line += " " + style.Dim.Render("req="+id)
				}
				fmt.Fprintln(out, line)
				return nil
			}

			mux := http.NewServeMux()
			mux.Handle(path, webhook.Handler(key, printEvent, opts...))

			logger := slog.Default()
			server := &http.Server{
				Addr: addr,
				Handler: middleware.Chain(mux,
					middleware.RequestID(),
					middleware.Logger(logger),
					middleware.Recovery,
					middleware.Logging,
				),
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.InfoContext(ctx, "listening for webhooks", xslog.URL(addr+path))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $RS_WEBHOOK_ADDR)")
	cmd.Flags().StringVar(&path, "path", "/webhooks", "path deliveries are posted to")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject malformed bodies with 400")
	secretFlag(cmd, &secret)

	return cmd
}
