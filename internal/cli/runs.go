package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func runsCmd(root *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved batch outcomes",
	}

	c.AddCommand(runsListCmd(root))
	return c
}

func runsListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}

			refs, err := ws.store.List()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(w, "(no saved runs)")
				return nil
			}

			fmt.Fprintf(w, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				fmt.Fprintf(w, "- %s  %s  total=%d working=%d not_working=%d\n",
					r.ID, r.StartedAt.Local().Format(time.DateTime), r.Total, r.Working, r.NotWorking)
			}
			return nil
		},
	}
}
