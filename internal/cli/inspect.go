package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addchain/chain"
)

// chainFromArgs builds a chain from VALUES, or [1] when none are given.
func chainFromArgs(args []string) (chain.Chain, error) {
	if len(args) == 0 {
		return chain.New(), nil
	}
	values, err := parseValues(args)
	if err != nil {
		return chain.Chain{}, err
	}

	return chain.FromValues(values)
}

func newBoundsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bounds LENGTH [VALUES...]",
		Short: "Print the sum range reachable from a partial chain",
		Long: `Print the smallest and largest sum any completion of the chain VALUES
(default: 1) to LENGTH elements can reach.`,
		Example: `  addchain bounds 5
  addchain bounds 5 1 2 4`,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := parseInt("length", args[0])
			if err != nil {
				return err
			}
			c, err := chainFromArgs(args[1:])
			if err != nil {
				return err
			}
			if length < c.Len() {
				return fmt.Errorf("length %d is shorter than the chain (%d elements)", length, c.Len())
			}

			minSum, maxSum := chain.MinSum(c, length), chain.MaxSum(c, length)
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), struct {
					Chain  []int `json:"chain"`
					Length int   `json:"length"`
					Min    int   `json:"min"`
					Max    int   `json:"max"`
				}{c.Values(), length, minSum, maxSum})
			}
			w := cmd.OutOrStdout()
			PrintLabelValue(w, "chain", c.String())
			PrintLabelValue(w, "min", strconv.Itoa(minSum))
			PrintLabelValue(w, "max", strconv.Itoa(maxSum))

			return nil
		},
	}
}

func newNextCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "next VALUES...",
		Short:   "Print the values that may follow a chain",
		Example: `  addchain next 1 2 4 8 9`,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "inspect",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chainFromArgs(args)
			if err != nil {
				return err
			}
			next := c.NextValues()
			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), next)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), chain.FormatValues(next))

			return err
		},
	}
}
