// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/stock-count/client"
	"github.com/danielhkuo/stock-count/count"
	"github.com/danielhkuo/stock-count/models"
)

func newCountCmd(opts *options) *cobra.Command {
	var operator, file, note string
	var yes bool

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Run a count from a CSV file of physical quantities",
		Long: `Starts a count, enters every row of the file, prints the variances and
submits. The file holds product_id,physical_quantity[,observation] rows; use
"-" to read it from stdin, which needs --yes since the answer to the prompt
is read from stdin too. When the count has differences you are asked to
confirm them unless --yes is given; declining discards the count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "-" && !yes {
				return errors.New("reading counts from stdin requires --yes")
			}
			rows, err := openCountFile(cmd, file)
			if err != nil {
				return err
			}
			return runCount(cmd, opts, operator, rows, note, yes)
		},
	}

	cmd.Flags().StringVarP(&operator, "operator", "o", "", "Person responsible for the count")
	cmd.Flags().StringVarP(&file, "file", "f", "", "CSV file with the physical quantities")
	cmd.Flags().StringVar(&note, "note", "", "Note stored with the count")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Record differences without asking")
	cmd.MarkFlagRequired("operator")
	cmd.MarkFlagRequired("file")

	return cmd
}

func openCountFile(cmd *cobra.Command, path string) ([]countRow, error) {
	if path == "-" {
		return readCountFile(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCountFile(f)
}

func runCount(cmd *cobra.Command, opts *options, operator string, rows []countRow, note string, yes bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	c := opts.client()

	loc, err := opts.location()
	if err != nil {
		return err
	}

	if _, err := c.StartSession(ctx, operator); err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
			return fmt.Errorf("%w; finish it with \"stockcount submit\" or drop it with \"stockcount discard\"", err)
		}
		return err
	}

	for _, row := range rows {
		if err := enterRow(ctx, c, row); err != nil {
			return abandon(ctx, c, out, err)
		}
	}

	view, err := c.Session(ctx)
	if err != nil {
		return err
	}
	printSession(out, view, loc)

	return submitSession(cmd, c, note, yes, true)
}

func enterRow(ctx context.Context, c *client.Client, row countRow) error {
	if row.Physical != nil {
		if _, err := c.SetQuantity(ctx, row.ProductID, row.Physical); err != nil {
			return fmt.Errorf("product %d: %w", row.ProductID, err)
		}
	}
	if row.Observation != "" {
		if _, err := c.SetObservation(ctx, row.ProductID, row.Observation); err != nil {
			return fmt.Errorf("product %d: %w", row.ProductID, err)
		}
	}
	return nil
}

// abandon discards the active count after a failure and returns cause.
func abandon(ctx context.Context, c *client.Client, out io.Writer, cause error) error {
	if err := c.Discard(ctx); err != nil {
		return errors.Join(cause, fmt.Errorf("discard count: %w", err))
	}
	fmt.Fprintln(out, styleMuted.Render("Count discarded"))
	return cause
}

// submitSession submits the active count, asking before recording
// differences. With discard set, an incomplete or declined count is dropped.
func submitSession(cmd *cobra.Command, c *client.Client, note string, yes, discard bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	resp, err := c.Submit(ctx, yes, note)
	if err != nil {
		var incomplete *count.IncompleteCountError
		if errors.As(err, &incomplete) {
			fmt.Fprintf(out, "%s %d product(s) not counted: %s\n",
				styleError.Render("Incomplete:"), len(incomplete.Missing), joinIDs(incomplete.Missing))
			if discard {
				return abandon(ctx, c, out, err)
			}
			return err
		}
		if errors.Is(err, count.ErrStorageUnavailable) {
			return fmt.Errorf("%w; the count is kept on the server, retry with \"stockcount submit\"", err)
		}
		return err
	}

	if resp.Outcome == models.OutcomeAwaitingConfirmation {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styleWarning.Render(fmt.Sprintf("%d product(s) differ from the recorded stock:", len(resp.Discrepancies))))
		printLines(out, resp.Discrepancies)

		ok, err := confirm(cmd.InOrStdin(), out, "Record the count with these differences? [y/N] ")
		if err != nil {
			return err
		}
		if !ok {
			if discard {
				return abandon(ctx, c, out, errors.New("count not recorded"))
			}
			return errors.New("count not recorded; it stays open on the server")
		}

		resp, err = c.Submit(ctx, true, note)
		if err != nil {
			if errors.Is(err, count.ErrStorageUnavailable) {
				return fmt.Errorf("%w; the count is kept on the server, retry with \"stockcount submit --yes\"", err)
			}
			return err
		}
	}

	fmt.Fprintf(out, "%s count %s\n", styleOK.Render("Recorded"), resp.ID)
	return nil
}

func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func joinIDs(ids []count.ProductID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(int64(id))
	}
	return strings.Join(parts, ", ")
}

func newSessionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the count in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc, err := opts.location()
			if err != nil {
				return err
			}
			view, err := opts.client().Session(cmd.Context())
			if errors.Is(err, count.ErrNotFound) {
				fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("No count in progress"))
				return nil
			}
			if err != nil {
				return err
			}
			printSession(cmd.OutOrStdout(), view, loc)
			return nil
		},
	}
}

func newSubmitCmd(opts *options) *cobra.Command {
	var note string
	var yes bool

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit the count in progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return submitSession(cmd, opts.client(), note, yes, false)
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Note stored with the count")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Record differences without asking")
	return cmd
}

func newDiscardCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "discard",
		Short: "Drop the count in progress without recording it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().Discard(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleMuted.Render("Count discarded"))
			return nil
		},
	}
}
