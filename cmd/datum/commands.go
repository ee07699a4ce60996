package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/datum/internal/scan"
	"github.com/username/datum/pkg/datum"
	"go.uber.org/zap"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Print every rendering of a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDatum(args)
			if err != nil {
				return err
			}

			year, week := d.ISOWeek()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date:          %s\n", d.ToISODateString())
			fmt.Fprintf(out, "ISO:           %s\n", d.ToISOString())
			fmt.Fprintf(out, "Date/time:     %s\n", d.ToDateTimeString())
			fmt.Fprintf(out, "Short:         %s\n", d.ToLongDateTimeString())
			fmt.Fprintf(out, "Time:          %s\n", d.ToLongTimeString())
			fmt.Fprintf(out, "Day name:      %s\n", d.DayName())
			fmt.Fprintf(out, "ISO week:      %d-W%02d\n", year, week)
			fmt.Fprintf(out, "Weekend:       %t\n", d.IsWeekend())
			fmt.Fprintf(out, "End of month:  %t\n", d.IsEndOfMonth())
			return nil
		},
	}
}

func nowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print now, today and yesterday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := datum.NewWithClock(cfg.Clock.GetClock())
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Now:        %s\n", cfg.Output.Render(d))
			d.Today()
			fmt.Fprintf(out, "Today:      %s\n", cfg.Output.Render(d))
			d.Yesterday()
			fmt.Fprintf(out, "Yesterday:  %s\n", cfg.Output.Render(d))
			return nil
		},
	}
}

func shiftCmd() *cobra.Command {
	var days, weeks, months int

	cmd := &cobra.Command{
		Use:   "shift [date]",
		Short: "Shift a date by months, days and weeks",
		Long:  "Apply --months (clamped to month end), then --days, then --weeks (fixed 7x24h) to a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDatum(args)
			if err != nil {
				return err
			}

			d.AddMonths(months)
			d.AddDays(days)
			d.SubtractWeeks(-weeks)

			logger.Info("Shifted date",
				zap.Int("months", months),
				zap.Int("days", days),
				zap.Int("weeks", weeks),
				zap.Time("result", d.Value()))

			fmt.Fprintln(cmd.OutOrStdout(), cfg.Output.Render(d))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Calendar days to add (negative subtracts)")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Weeks to add (negative subtracts)")
	cmd.Flags().IntVar(&months, "months", 0, "Calendar months to add (negative subtracts)")

	return cmd
}

func boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [date]",
		Short: "Print day, week and month boundaries of a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDatum(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			bounds := []struct {
				label string
				apply func(*datum.Datum)
			}{
				{"Start of day", func(x *datum.Datum) { x.StartOfDay() }},
				{"End of day", func(x *datum.Datum) { x.EndOfDay() }},
				{"Start of week", func(x *datum.Datum) { x.StartOfWeek() }},
				{"End of week", func(x *datum.Datum) { x.EndOfWeek() }},
				{"End of month", func(x *datum.Datum) { x.EndOfMonth() }},
			}
			for _, b := range bounds {
				x := d.Clone()
				b.apply(x)
				fmt.Fprintf(out, "%-14s %s\n", b.label+":", cfg.Output.Render(x))
			}
			return nil
		},
	}
}

func scanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <file>",
		Short: "Describe every date in a file (one YYYY-MM-DD per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := scan.NewScanner(logger).ScanFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range result.Entries {
				eom := ""
				if e.Datum.IsEndOfMonth() {
					eom = " (end of month)"
				}
				fmt.Fprintf(out, "%s  %-9s%s", e.Datum.ToISODateString(), e.Datum.DayName(), eom)
				if e.Note != "" {
					fmt.Fprintf(out, "  %s", e.Note)
				}
				fmt.Fprintln(out)
			}

			if result.Span.Start == nil {
				fmt.Fprintln(out, "Span: empty")
				return nil
			}
			start := datum.NewFromTime(*result.Span.Start)
			end := datum.NewFromTime(*result.Span.End)
			fmt.Fprintf(out, "Span: %s .. %s (%d skipped)\n",
				start.ToISODateString(), end.ToISODateString(), result.Skipped)
			return nil
		},
	}
}
