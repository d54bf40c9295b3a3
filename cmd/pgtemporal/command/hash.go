package command

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/theory/pgtemporal/temporal/hash"
)

// hashCommand returns the hash command and its int, float, and text
// subcommands. Results print as signed integers, the way PostgreSQL
// reports hashint4() and hashint4extended().
func (a *app) hashCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the PostgreSQL hash of a value",
	}
	cmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "compute the seeded 64-bit extended hash")

	sub := func(use, short string, h func(string) (uint32, error), hx func(string, uint64) (uint64, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <value>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if cmd.Flags().Changed("seed") {
					v, err := hx(args[0], seed)
					if err != nil {
						return err
					}
					a.logger.Debug("hashed", "type", use, "input", args[0], "seed", seed, "hash", v)
					fmt.Fprintln(cmd.OutOrStdout(), int64(v)) //nolint:gosec
					return nil
				}

				v, err := h(args[0])
				if err != nil {
					return err
				}
				a.logger.Debug("hashed", "type", use, "input", args[0], "hash", v)
				fmt.Fprintln(cmd.OutOrStdout(), int32(v)) //nolint:gosec
				return nil
			},
		}
	}

	cmd.AddCommand(
		sub("int", "Hash an integer as int8",
			func(s string) (uint32, error) {
				v, err := toInt64(s)
				return hash.Int64(v), err
			},
			func(s string, seed uint64) (uint64, error) {
				v, err := toInt64(s)
				return hash.Int64Extended(v, seed), err
			},
		),
		sub("float", "Hash a number as float8",
			func(s string) (uint32, error) {
				v, err := cast.ToFloat64E(s)
				return hash.Float64(v), err
			},
			func(s string, seed uint64) (uint64, error) {
				v, err := cast.ToFloat64E(s)
				return hash.Float64Extended(v, seed), err
			},
		),
		sub("text", "Hash a string as text",
			func(s string) (uint32, error) { return hash.Text(s), nil },
			func(s string, seed uint64) (uint64, error) { return hash.TextExtended(s, seed), nil },
		),
	)

	return cmd
}
