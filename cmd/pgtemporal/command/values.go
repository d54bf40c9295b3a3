package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/pgtemporal/temporal/types"
)

func (a *app) dateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "date <value>...",
		Short: "Parse dates and print them in the configured DateStyle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, src := range args {
				d, err := a.engine.ParseDate(src)
				if err != nil {
					return err
				}
				a.logger.Debug("parsed date", "input", src, "days", int32(d))

				out, err := a.engine.FormatDate(d)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
}

func (a *app) timestampCommand() *cobra.Command {
	var (
		withTZ    bool
		precision int32
	)

	cmd := &cobra.Command{
		Use:   "timestamp <value>...",
		Short: "Parse timestamps and print them in the configured DateStyle",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := types.Precision(precision)
			for _, src := range args {
				out, err := a.roundTrip(src, p, withTZ)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTZ, "tz", false, "read and write timestamp with time zone")
	cmd.Flags().Int32VarP(&precision, "precision", "p", int32(types.Unconstrained), "fractional second digits to keep, 0-6")
	return cmd
}

// roundTrip parses src as a timestamp or timestamptz rounded to p and
// returns its text representation.
func (a *app) roundTrip(src string, p types.Precision, withTZ bool) (string, error) {
	if withTZ {
		ts, err := a.engine.ParseTimestampTZ(src, p)
		if err != nil {
			return "", err
		}
		a.logger.Debug("parsed timestamptz", "input", src, "precision", p, "micros", int64(ts))
		return a.engine.FormatTimestampTZ(ts)
	}

	ts, err := a.engine.ParseTimestamp(src, p)
	if err != nil {
		return "", err
	}
	a.logger.Debug("parsed timestamp", "input", src, "precision", p, "micros", int64(ts))
	return a.engine.FormatTimestamp(ts)
}

func (a *app) intervalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "interval <value>...",
		Short: "Parse intervals and print them in the postgres style",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, src := range args {
				iv, err := a.engine.ParseInterval(src)
				if err != nil {
					return err
				}
				a.logger.Debug("parsed interval",
					"input", src, "months", iv.Months, "days", iv.Days, "micros", iv.Micros,
				)
				fmt.Fprintln(cmd.OutOrStdout(), a.engine.FormatInterval(iv))
			}
			return nil
		},
	}
}

func (a *app) stylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the DateStyle keywords and time zone abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.engine.Config()
			styles, orders := types.DateStyleKeywords()
			w := cmd.OutOrStdout()
			writeList(w, "current", []string{types.FormatDateStyle(cfg.Style, cfg.Order)})
			writeList(w, "styles", styles)
			writeList(w, "orders", orders)
			writeList(w, "zones", types.ZoneAbbrevs())
			return nil
		},
	}
}

// writeList writes a labeled, comma-separated list on a single line.
func writeList(w io.Writer, label string, items []string) {
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(items, ", "))
}
