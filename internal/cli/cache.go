package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addchain/chain"
	"github.com/katalvlaran/addchain/internal/store"
)

var errCacheDisabled = errors.New("result cache is disabled")

func newCacheCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cache",
		Short:   "Inspect or clear the result cache",
		GroupID: "tooling",
	}

	// open differs from openCache: inspection commands fail loudly.
	open := func() (*store.Store, error) {
		if !a.cfg.Cache.Enabled {
			return nil, errCacheDisabled
		}
		st, err := store.Open(a.cfg.Cache.Path)
		if err != nil {
			return nil, err
		}
		a.cache = st

		return st, nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List cached outcomes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer a.closeCache()

			entries, err := st.List(cmd.Context())
			if err != nil {
				return err
			}
			if a.jsonOutput {
				if entries == nil {
					entries = []store.Entry{}
				}
				return outputJSON(cmd.OutOrStdout(), entries)
			}

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				PrintWarning(w, "cache is empty")
				return nil
			}
			for _, e := range entries {
				result := "No solution."
				if e.Found {
					result = chain.FormatValues(e.Values)
				}
				if _, err := fmt.Fprintf(w, "%d %d: %s\n", e.Length, e.Sum, result); err != nil {
					return err
				}
			}

			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove every cached outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open()
			if err != nil {
				return err
			}
			defer a.closeCache()

			n, err := st.Clear(cmd.Context())
			if err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("removed %d cached outcome(s)", n))

			return nil
		},
	})

	return cmd
}
