package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/client"
	"github.com/Render-Screenshot/rs-go/internal/cli/style"
	"github.com/Render-Screenshot/rs-go/screenshot"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Create and inspect screenshot batches",
	}
	cmd.AddCommand(batchCreateCmd(), batchGetCmd())
	return cmd
}

func batchCreateCmd() *cobra.Command {
	var (
		flags      optionFlags
		webhookURL string
	)

	cmd := &cobra.Command{
		Use:   "create URL...",
		Short: "Queue a batch of screenshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			req := &client.BatchRequest{
				Requests:   make([]screenshot.Options, len(args)),
				WebhookURL: webhookURL,
			}
			for i, arg := range args {
				if req.Requests[i], err = flags.apply(screenshot.URL(arg)); err != nil {
					return err
				}
			}

			batch, err := c.Batch.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			printBatch(cmd.OutOrStdout(), batch)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "URL notified when the batch finishes")

	return cmd
}

func batchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show the status of a batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			batch, err := c.Batch.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printBatch(cmd.OutOrStdout(), batch)
			return nil
		},
	}
}

func printBatch(w io.Writer, b *client.Batch) {
	const width = 11

	fmt.Fprintln(w, style.KV("id", b.ID, width))
	fmt.Fprintln(w, style.KV("status", style.Status(string(b.Status)).Render(string(b.Status)), width))
	fmt.Fprintln(w, style.KV("progress", fmt.Sprintf("%d/%d done, %d failed", b.Completed, b.Total, b.Failed), width))

	for _, r := range b.Results {
		label := "#" + strconv.Itoa(r.Index)
		switch {
		case r.Result != nil:
			fmt.Fprintln(w, style.KV(label, r.Result.URL, width))
		case r.Error != nil:
			fmt.Fprintln(w, style.KV(label, style.Fail.Render(r.Error.Code)+" "+r.Error.Message, width))
		default:
			fmt.Fprintln(w, style.KV(label, style.Status(r.Status).Render(r.Status), width))
		}
	}
}
