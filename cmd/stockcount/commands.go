// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"os"
	"time"

	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/stock-count/client"
)

// ServerEnv overrides the default server address
const ServerEnv = "STOCKCOUNT_SERVER"

// options holds the persistent flags shared by every command
type options struct {
	server string
	tz     string
}

func (o *options) client() *client.Client {
	return client.New(o.server)
}

// location is the zone used to print timestamps and read --date.
func (o *options) location() (*time.Location, error) {
	if o.tz == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(o.tz)
	if err != nil {
		return nil, fmt.Errorf("invalid --tz %q: %w", o.tz, err)
	}
	return loc, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	defaultServer := os.Getenv(ServerEnv)
	if defaultServer == "" {
		defaultServer = client.DefaultBaseURL
	}

	rootCmd := &cobra.Command{
		Use:   "stockcount",
		Short: "Physical stock counts against the recorded inventory",
		Long: `stockcount talks to a stock count server. Start a count from a CSV file of
physical quantities, review the variances, confirm any differences, and browse
the history of recorded counts.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.server, "server", defaultServer,
		"Stock count server URL (env "+ServerEnv+")")
	rootCmd.PersistentFlags().StringVar(&opts.tz, "tz", "",
		"Time zone for dates and timestamps, e.g. America/Lima (default: local)")

	rootCmd.AddCommand(
		newInventoryCmd(opts),
		newCountCmd(opts),
		newSessionCmd(opts),
		newSubmitCmd(opts),
		newDiscardCmd(opts),
		newHistoryCmd(opts),
		newShowCmd(opts),
	)

	return rootCmd
}

func newInventoryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inventory",
		Short: "List products with their recorded stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := opts.client().Inventory(cmd.Context())
			if err != nil {
				return err
			}
			printInventory(cmd.OutOrStdout(), products)
			return nil
		},
	}
}

func newHistoryCmd(opts *options) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded counts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			summaries, err := opts.client().ListCounts(cmd.Context(), date, opts.tz)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), summaries, loc)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Only counts recorded on this day (YYYY-MM-DD)")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a recorded count with every product line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			rec, err := opts.client().GetCount(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printRecord(cmd.OutOrStdout(), rec, loc)
			return nil
		},
	}
}
