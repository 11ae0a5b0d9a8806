package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/linkcheck/internal/buildinfo"
	"github.com/aalvaropc/linkcheck/internal/infra/logger"
	"github.com/aalvaropc/linkcheck/internal/ui/tui"
	"github.com/aalvaropc/linkcheck/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "linkcheck",
		Short:        "linkcheck: batch URL reachability checker",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The TUI and check both log under the workspace root.
			if cmd.Name() == "version" || cmd.Name() == "init" {
				return nil
			}
			root, _, err := resolveWorkspaceRoot(o.workspace)
			if err != nil {
				return err
			}
			cleanup, err := logger.Setup(logger.Config{
				Root:    root,
				Debug:   o.debug,
				Version: buildinfo.Version,
			})
			if cleanup != nil {
				cobra.OnFinalize(func() { _ = cleanup() })
			}
			// The TUI shows the log location in its header instead.
			if o.debug && cmd.HasParent() {
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log unavailable: %v\n", err)
				} else {
					fmt.Fprintf(cmd.ErrOrStderr(), "debug log: %s\n", logger.Path())
				}
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(o.workspace)
			if err != nil {
				return err
			}

			opts := []usecase.RunOption{usecase.WithLogger(logger.L())}
			if ws.cfg.Runs.Save {
				opts = append(opts, usecase.WithArtifactStore(ws.store))
			}

			deps := tui.Deps{
				ExportsDir: ws.exportsDir(),
				Batch:      usecase.NewBatchTask(usecase.NewRunBatch(ws.prober(), opts...)),
				Export:     usecase.NewExportResults(ws.exporter, usecase.WithExportLogger(logger.L())),
				Source:     ws.source(""),
				Logger:     logger.L(),
				LogPath:    logger.Path(),
				Debug:      o.debug,
			}
			if ws.found {
				deps.WorkspaceRoot = ws.root
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable verbose logging to "+logger.Dir+"/linkcheck.log")
	cmd.PersistentFlags().StringVarP(&o.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	cmd.AddCommand(
		checkCmd(o),
		validateCmd(o),
		initCmd(),
		runsCmd(o),
		versionCmd(),
	)
	return cmd
}
