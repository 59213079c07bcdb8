// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/stock-count/models"
)

var (
	colorOK      = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")

	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleWarning = lipgloss.NewStyle().Foreground(colorWarning)
	styleError   = lipgloss.NewStyle().Foreground(colorError)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
)

// renderStatus colours a line status; it is always printed in the last
// column so escape codes never disturb tabwriter alignment.
func renderStatus(status string) string {
	switch status {
	case models.StatusExact:
		return styleOK.Render(status)
	case models.StatusShort:
		return styleError.Render(status)
	case models.StatusOver:
		return styleWarning.Render(status)
	default:
		return styleMuted.Render(status)
	}
}

func optional(n *int64) string {
	if n == nil {
		return "-"
	}
	return humanize.Comma(*n)
}

func signed(n int64) string {
	if n > 0 {
		return "+" + humanize.Comma(n)
	}
	return humanize.Comma(n)
}

func optionalSigned(n *int64) string {
	if n == nil {
		return "-"
	}
	return signed(*n)
}

func when(t time.Time, loc *time.Location) string {
	return fmt.Sprintf("%s (%s)", t.In(loc).Format("2006-01-02 15:04"), humanize.Time(t))
}

func printInventory(w io.Writer, products []models.Product) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tDESCRIPTION\tCATEGORY\tSTOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Code, p.Description, p.Category, humanize.Comma(p.Stock))
	}
	tw.Flush()
	fmt.Fprintf(w, "%d product(s)\n", len(products))
}

func printLines(w io.Writer, lines []models.CountLine) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tDESCRIPTION\tRECORDED\tPHYSICAL\tVARIANCE\tSTATUS")
	for _, l := range lines {
		status := renderStatus(l.Status)
		if l.HasObservation {
			status += " *"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ProductID, l.Code, l.Description, humanize.Comma(l.RecordedQuantity),
			optional(l.PhysicalQuantity), optionalSigned(l.Variance), status)
	}
	tw.Flush()
}

func printSession(w io.Writer, view models.SessionView, loc *time.Location) {
	fmt.Fprintln(w, styleTitle.Render("Count by "+view.Responsible)+", started "+when(view.StartedAt, loc))
	printLines(w, view.Lines)

	s := view.Summary
	fmt.Fprintf(w, "%d of %d counted, %d exact, %d short, %d over, net variance %s\n",
		s.Counted, s.Total, s.Exact, s.Short, s.Over, signed(s.NetVariance))
}

func printHistory(w io.Writer, summaries []models.ReconciliationSummary, loc *time.Location) {
	if len(summaries) == 0 {
		fmt.Fprintln(w, styleMuted.Render("No counts recorded"))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOUNTED AT\tDIFFERENCES\tNOTE")
	for _, s := range summaries {
		differences := "no"
		if s.HasDifferences {
			differences = "yes"
		}
		note := ""
		if s.Note != nil {
			note = *s.Note
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.ID, when(s.CountedAt, loc), differences, note)
	}
	tw.Flush()
}

func printRecord(w io.Writer, rec models.Reconciliation, loc *time.Location) {
	fmt.Fprintln(w, styleTitle.Render("Count "+rec.ID))
	fmt.Fprintf(w, "Counted at:   %s\n", when(rec.CountedAt, loc))
	fmt.Fprintf(w, "Responsible:  %s\n", rec.Responsible)
	if rec.HasDifferences {
		fmt.Fprintf(w, "Differences:  %s\n", styleWarning.Render("yes"))
	} else {
		fmt.Fprintf(w, "Differences:  %s\n", styleOK.Render("no"))
	}
	if rec.Note != nil {
		fmt.Fprintf(w, "Note:         %s\n", *rec.Note)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tDESCRIPTION\tCATEGORY\tRECORDED\tPHYSICAL\tVARIANCE\tSTATUS")
	for _, d := range rec.Details {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ProductID, d.Code, d.Description, d.Category, humanize.Comma(d.RecordedQuantity),
			humanize.Comma(d.PhysicalQuantity), signed(d.Variance), renderStatus(d.Status))
	}
	tw.Flush()

	for _, d := range rec.Details {
		if d.Observation != "" {
			fmt.Fprintf(w, "  %s: %s\n", d.Code, d.Observation)
		}
	}
}
