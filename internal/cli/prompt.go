package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/addchain/search"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "prompt",
		Short:   "Ask for the length and sum interactively",
		Args:    cobra.NoArgs,
		GroupID: "search",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			w := cmd.OutOrStdout()

			length, err := promptInt(in, w, "Enter chain length:  ", "length")
			if err != nil {
				return err
			}
			sum, err := promptInt(in, w, "Enter target sum:  ", "sum")
			if err != nil {
				return err
			}
			defer a.closeCache()

			out, err := a.solveOne(cmd.Context(), search.Target{Length: length, Sum: sum}, a.cfg.GetTimeout(), true)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, out)

			return err
		},
	}
}

// promptInt writes label, reads one line, and parses it as an integer.
func promptInt(in *bufio.Reader, w io.Writer, label, name string) (int, error) {
	if _, err := fmt.Fprint(w, label); err != nil {
		return 0, err
	}
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return parseInt(name, strings.TrimSpace(line))
}
