package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/infra/logger"
	"github.com/aalvaropc/linkcheck/internal/usecase"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type checkOptions struct {
	files    []string
	jsonPath string
	format   string

	timeout  time.Duration
	rate     float64
	detailed bool
	save     bool
	noFail   bool

	exportWorking    string
	exportNotWorking string
}

func checkCmd(root *rootOptions) *cobra.Command {
	var o checkOptions

	c := &cobra.Command{
		Use:   "check [URL...]",
		Short: "Check a batch of URLs and report which ones load",
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(root.workspace)
			if err != nil {
				return err
			}
			applyCheckFlags(cmd, &ws.cfg, o)

			if o.format != "pretty" && o.format != "json" && o.format != "" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", o.format)
			}

			text, err := readInput(ws.source(o.jsonPath), cmd.InOrStdin(), args, o.files)
			if err != nil {
				return err
			}

			opts := []usecase.RunOption{usecase.WithLogger(logger.L())}
			if ws.cfg.Runs.Save {
				opts = append(opts, usecase.WithArtifactStore(ws.store))
			}
			uc := usecase.NewRunBatch(ws.prober(), opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			stdout := cmd.OutOrStdout()
			var observe domain.Observer
			if o.format != "json" {
				observe = func(ev domain.Event) {
					if pe, ok := ev.(domain.ProgressEvent); ok {
						printResultLine(stdout, pe.Result)
					}
				}
			}

			out, runErr := uc.Execute(ctx, text, observe)
			if domain.IsKind(runErr, domain.KindNoURLs) {
				return fmt.Errorf("no URLs to check (pass URLs as arguments or use --file): %w", runErr)
			}

			complete := !errors.Is(runErr, context.Canceled) && !errors.Is(runErr, context.DeadlineExceeded)
			if err := printOutcome(stdout, out, o.format, complete); err != nil {
				return err
			}
			if runErr != nil {
				// Canceled or save failure: results above are still valid.
				return runErr
			}

			stderr := cmd.ErrOrStderr()
			exp := usecase.NewExportResults(ws.exporter, usecase.WithExportLogger(logger.L()))
			if err := exportPartition(stderr, exp, out, domain.PartitionWorking, o.exportWorking); err != nil {
				return err
			}
			if err := exportPartition(stderr, exp, out, domain.PartitionNotWorking, o.exportNotWorking); err != nil {
				return err
			}

			if n := len(out.NotWorking()); n > 0 && !o.noFail {
				return fmt.Errorf("%d URL(s) not working", n)
			}
			return nil
		},
	}

	c.Flags().StringArrayVarP(&o.files, "file", "f", nil, "Read URLs from a file (.txt, .html, .json; - for stdin). Repeatable")
	c.Flags().StringVar(&o.jsonPath, "json-path", "", "JSONPath selecting URL strings in .json files (default $[*])")
	c.Flags().StringVar(&o.format, "format", "pretty", "Output format: pretty|json")
	c.Flags().DurationVar(&o.timeout, "timeout", domain.DefaultProbeTimeout, "Per-request timeout")
	c.Flags().Float64Var(&o.rate, "rate", 0, "Maximum requests per second (0 = unlimited)")
	c.Flags().BoolVar(&o.detailed, "detailed-reasons", false, "Report the actual failure instead of \"Failed to load\"")
	c.Flags().BoolVar(&o.save, "save", false, "Save the batch outcome under runs/")
	c.Flags().BoolVar(&o.noFail, "no-fail", false, "Exit 0 even when some URLs are not working")
	c.Flags().StringVar(&o.exportWorking, "export-working", "", "Write Working URLs to this .xlsx file")
	c.Flags().StringVar(&o.exportNotWorking, "export-not-working", "", "Write Not Working URLs to this .xlsx file")

	return c
}

// applyCheckFlags lets explicitly set flags override linkcheck.yaml and env.
func applyCheckFlags(cmd *cobra.Command, cfg *domain.Config, o checkOptions) {
	f := cmd.Flags()
	if f.Changed("timeout") && o.timeout > 0 {
		cfg.Probe.Timeout = o.timeout
	}
	if f.Changed("rate") && o.rate >= 0 {
		cfg.Probe.RatePerSecond = o.rate
	}
	if f.Changed("detailed-reasons") {
		cfg.Probe.DetailedReasons = o.detailed
	}
	if f.Changed("save") {
		cfg.Runs.Save = o.save
	}
}

func exportPartition(w io.Writer, uc *usecase.ExportResults, out domain.BatchOutcome, p domain.Partition, path string) error {
	if path == "" {
		return nil
	}
	if len(out.URLs(p)) == 0 {
		fmt.Fprintf(w, "skip: no %s URLs to export\n", p.Label())
		return nil
	}
	saved, err := uc.Execute(out, p, path)
	if err != nil {
		return err
	}
	if saved != "" {
		fmt.Fprintf(w, "%s results saved to %s\n", p.Label(), saved)
	}
	return nil
}

func printResultLine(w io.Writer, r domain.CheckResult) {
	if r.IsWorking() {
		fmt.Fprintln(w, okStyle.Render(r.String()))
		return
	}
	fmt.Fprintln(w, failStyle.Render(r.String()))
}

// printOutcome writes the final report. An incomplete (canceled) batch
// gets no summary.
func printOutcome(w io.Writer, out domain.BatchOutcome, format string, complete bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"batch": out,
		}
		if complete {
			payload["summary"] = out.Summary()
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettySummary(w, out, complete)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

// printPrettySummary prints the trailer after the streamed result lines.
func printPrettySummary(w io.Writer, out domain.BatchOutcome, complete bool) {
	total := out.EndedAt.Sub(out.StartedAt)
	if out.StartedAt.IsZero() || out.EndedAt.IsZero() {
		total = 0
	}

	fmt.Fprintln(w)
	if out.ID != "" {
		fmt.Fprintf(w, "Batch:    %s\n", out.ID)
	}
	fmt.Fprintf(w, "Duration: %s\n", total.Round(time.Millisecond))

	p := out.Progress()
	fmt.Fprintf(w, "Checked:  %d (working %d, not working %d)\n", p.Processed, p.Working, p.NotWorking)
	if complete && p.Processed > 0 {
		fmt.Fprintln(w, out.Summary().String())
	}
}
