package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/theory/pgtemporal/temporal/types"
)

// shiftCommand returns the add or sub command, which moves a timestamp by
// an interval. neg selects subtraction.
func (a *app) shiftCommand(use, short string, neg bool) *cobra.Command {
	var withTZ bool

	cmd := &cobra.Command{
		Use:   use + " <timestamp> <interval>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := a.engine.ParseInterval(args[1])
			if err != nil {
				return err
			}

			var out string
			if withTZ {
				out, err = a.shiftTZ(args[0], iv, neg)
			} else {
				out, err = a.shift(args[0], iv, neg)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTZ, "tz", false, "operate on timestamp with time zone")
	return cmd
}

func (a *app) shift(src string, iv types.Interval, neg bool) (string, error) {
	ts, err := a.engine.ParseTimestamp(src, types.Unconstrained)
	if err != nil {
		return "", err
	}

	var res types.Timestamp
	if neg {
		res, err = a.engine.SubInterval(ts, iv)
	} else {
		res, err = a.engine.AddInterval(ts, iv)
	}
	if err != nil {
		return "", err
	}

	a.logger.Debug("shifted timestamp", "from", int64(ts), "to", int64(res), "subtract", neg)
	return a.engine.FormatTimestamp(res)
}

func (a *app) shiftTZ(src string, iv types.Interval, neg bool) (string, error) {
	ts, err := a.engine.ParseTimestampTZ(src, types.Unconstrained)
	if err != nil {
		return "", err
	}

	var res types.TimestampTZ
	if neg {
		res, err = a.engine.SubIntervalTZ(ts, iv)
	} else {
		res, err = a.engine.AddIntervalTZ(ts, iv)
	}
	if err != nil {
		return "", err
	}

	a.logger.Debug("shifted timestamptz", "from", int64(ts), "to", int64(res), "subtract", neg)
	return a.engine.FormatTimestampTZ(res)
}

func (a *app) diffCommand() *cobra.Command {
	var withTZ bool

	cmd := &cobra.Command{
		Use:   "diff <timestamp> <timestamp>",
		Short: "Print the interval from the second timestamp to the first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				iv  types.Interval
				err error
			)
			if withTZ {
				iv, err = a.diffTZ(args[0], args[1])
			} else {
				iv, err = a.diff(args[0], args[1])
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.FormatInterval(iv))
			return nil
		},
	}

	cmd.Flags().BoolVar(&withTZ, "tz", false, "operate on timestamp with time zone")
	return cmd
}

func (a *app) diff(src1, src2 string) (types.Interval, error) {
	t1, err := a.engine.ParseTimestamp(src1, types.Unconstrained)
	if err != nil {
		return types.Interval{}, err
	}
	t2, err := a.engine.ParseTimestamp(src2, types.Unconstrained)
	if err != nil {
		return types.Interval{}, err
	}
	a.logger.Debug("subtracting timestamps", "minuend", int64(t1), "subtrahend", int64(t2))
	return a.engine.Difference(t1, t2)
}

func (a *app) diffTZ(src1, src2 string) (types.Interval, error) {
	t1, err := a.engine.ParseTimestampTZ(src1, types.Unconstrained)
	if err != nil {
		return types.Interval{}, err
	}
	t2, err := a.engine.ParseTimestampTZ(src2, types.Unconstrained)
	if err != nil {
		return types.Interval{}, err
	}
	a.logger.Debug("subtracting timestamptzs", "minuend", int64(t1), "subtrahend", int64(t2))
	return a.engine.DifferenceTZ(t1, t2)
}

func (a *app) cmpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cmp <interval> <interval>",
		Short: "Print -1, 0, or 1 as the first interval is shorter, equal, or longer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			i1, err := a.engine.ParseInterval(args[0])
			if err != nil {
				return err
			}
			i2, err := a.engine.ParseInterval(args[1])
			if err != nil {
				return err
			}
			res := a.engine.CompareIntervals(i1, i2)
			a.logger.Debug("compared intervals", "left", args[0], "right", args[1], "result", res)
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) justifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "justify <interval>",
		Short: "Move whole days out of the time part of an interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := a.engine.ParseInterval(args[0])
			if err != nil {
				return err
			}
			res, err := a.engine.Justify(iv)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.engine.FormatInterval(res))
			return nil
		},
	}
}
