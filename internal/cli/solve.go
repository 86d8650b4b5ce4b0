package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addchain/search"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		timeout time.Duration
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "solve LENGTH SUM",
		Short: "Find a chain with LENGTH elements summing to SUM",
		Long: `Find an addition chain with exactly LENGTH elements (LENGTH-1 additions)
whose elements sum to SUM. Prints the chain, or "No solution." when none exists.`,
		Example: `  addchain solve 5 19
  addchain solve 25 1234567 --timeout 1m`,
		Args:    cobra.ExactArgs(2),
		GroupID: "search",
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseInt("length", args[0])
			if err != nil {
				return err
			}
			sum, err := parseInt("sum", args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = a.cfg.GetTimeout()
			}
			defer a.closeCache()

			out, err := a.solveOne(cmd.Context(), search.Target{Length: length, Sum: sum}, timeout, !noCache)
			if err != nil {
				return err
			}

			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the result cache")

	return cmd
}
