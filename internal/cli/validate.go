package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// validateCmd loads config and input and prints the normalized URLs that
// check would probe, without any HTTP.
func validateCmd(root *rootOptions) *cobra.Command {
	var files []string
	var jsonPath string

	c := &cobra.Command{
		Use:   "validate [URL...]",
		Short: "Show the normalized URLs a check would probe (no HTTP)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			text, err := readInput(ws.source(jsonPath), cmd.InOrStdin(), args, files)
			if err != nil {
				return err
			}

			entries := domain.NewEntries(text)
			if len(entries) == 0 {
				return &domain.OpError{Op: "validate", Kind: domain.KindNoURLs, Err: domain.ErrNoURLs}
			}

			w := cmd.OutOrStdout()
			for _, e := range entries {
				if e.Raw != e.URL {
					fmt.Fprintf(w, "%s  (from %q)\n", e.URL, e.Raw)
					continue
				}
				fmt.Fprintln(w, e.URL)
			}
			fmt.Fprintf(w, "\n%d URL(s); timeout %s\n", len(entries), ws.cfg.Probe.Timeout)
			return nil
		},
	}

	c.Flags().StringArrayVarP(&files, "file", "f", nil, "Read URLs from a file (.txt, .html, .json; - for stdin). Repeatable")
	c.Flags().StringVar(&jsonPath, "json-path", "", "JSONPath selecting URL strings in .json files (default $[*])")
	return c
}
