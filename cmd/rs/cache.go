package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Render-Screenshot/rs-go/client"
	"github.com/Render-Screenshot/rs-go/internal/cli/style"
)

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and purge cached screenshots",
	}
	cmd.AddCommand(cacheGetCmd(), cacheDeleteCmd(), cachePurgeCmd())
	return cmd
}

func cacheGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Show a cache entry",
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

			entry, err := c.Cache.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			const width = 9
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, style.KV("key", entry.Key, width))
			fmt.Fprintln(out, style.KV("url", entry.URL, width))
			fmt.Fprintln(out, style.KV("size", strconv.FormatInt(entry.Size, 10), width))
			if entry.ExpiresAt != nil {
				fmt.Fprintln(out, style.KV("expires", entry.ExpiresAt.String(), width))
			}
			return nil
		},
	}
}

func cacheDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a cache entry",
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

			if err := c.Cache.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK.Render("deleted")+" "+args[0])
			return nil
		},
	}
}

func cachePurgeCmd() *cobra.Command {
	var req client.PurgeRequest

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge cache entries by key or URL pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(req.Keys) == 0 && req.URLPattern == "" {
				return errors.New("pass --key or --url-pattern")
			}

			cfg, err := readConfig()
			if err != nil {
				return err
			}
			c, err := newClient(cfg)
			if err != nil {
				return err
			}

			res, err := c.Cache.Purge(cmd.Context(), &req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.OK.Render("purged")+" "+strconv.Itoa(res.Purged))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&req.Keys, "key", nil, "cache key, repeatable")
	cmd.Flags().StringVar(&req.URLPattern, "url-pattern", "", "purge entries whose source URL matches")

	return cmd
}
