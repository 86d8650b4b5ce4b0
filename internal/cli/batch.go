package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addchain/search"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Solve many LENGTH SUM pairs concurrently",
		Long: `Read one "LENGTH SUM" pair per line from FILE (or stdin) and solve them on a
pool of workers. Blank lines and lines starting with # are ignored. Output
preserves input order.`,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "search",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open batch file: %w", err)
				}
				defer f.Close()
				r = f
			}
			targets, err := parseTargets(r)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			defer a.closeCache()

			ctx := cmd.Context()
			st := a.openCache(!noCache)
			outs := make([]outcome, len(targets))

			// Answer what the cache knows; search the rest.
			var (
				pending []search.Target
				slots   []int
			)
			for i, t := range targets {
				if res, ok := a.lookup(ctx, st, t); ok {
					outs[i] = newOutcome(t, res, true)
					continue
				}
				pending = append(pending, t)
				slots = append(slots, i)
			}

			results, err := search.SolveBatch(ctx, pending, workers, a.searchOptions(ctx, a.cfg.GetTimeout())...)
			if err != nil {
				return err
			}
			for j, br := range results {
				i := slots[j]
				if br.Err != nil {
					outs[i] = outcome{Length: br.Target.Length, Sum: br.Target.Sum, Error: br.Err.Error()}
					continue
				}
				a.remember(ctx, st, br.Target, br.Result)
				outs[i] = newOutcome(br.Target, br.Result, false)
			}

			if a.jsonOutput {
				return outputJSON(cmd.OutOrStdout(), outs)
			}
			w := cmd.OutOrStdout()
			for _, o := range outs {
				if _, err := fmt.Fprintf(w, "%d %d: %s\n", o.Length, o.Sum, o); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "Number of concurrent searches")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Bypass the result cache")

	return cmd
}

// parseTargets reads "LENGTH SUM" lines. Errors name the offending line.
func parseTargets(r io.Reader) ([]search.Target, error) {
	var (
		out  []search.Target
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"LENGTH SUM\", got %q", line, text)
		}
		length, err := parseInt("length", fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sum, err := parseInt("sum", fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, search.Target{Length: length, Sum: sum})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return out, nil
}
