package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/infra/httpclient"
	"github.com/aalvaropc/linkcheck/internal/infra/httpprober"
	"github.com/aalvaropc/linkcheck/internal/infra/runstore"
	"github.com/aalvaropc/linkcheck/internal/infra/urlsource"
	"github.com/aalvaropc/linkcheck/internal/infra/workspacefinder"
	"github.com/aalvaropc/linkcheck/internal/infra/xlsxexport"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

// workspaceCtx holds the resolved root, its config and the adapters built
// from it. found is false when no linkcheck.yaml exists above the working
// directory; the tool then runs on defaults rooted at the working directory.
type workspaceCtx struct {
	root  string
	found bool
	cfg   domain.Config

	exporter ports.Exporter
	store    *runstore.JSONStore
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		found:    found,
		cfg:      cfg,
		exporter: xlsxexport.New(),
		store:    runstore.NewJSONStore(root, cfg, runstore.WithIndex(true)),
	}, nil
}

// prober builds the HTTP prober from the (possibly flag-adjusted) config.
func (ws *workspaceCtx) prober() ports.Prober {
	client := httpclient.New(httpclient.FromProbe(ws.cfg.Probe))
	return httpprober.FromProbe(client, ws.cfg.Probe)
}

func (ws *workspaceCtx) source(jsonPath string) *urlsource.Loader {
	return urlsource.NewLoader(urlsource.WithJSONPath(jsonPath))
}

// exportsDir is the configured exports directory, absolute under root.
func (ws *workspaceCtx) exportsDir() string {
	dir := ws.cfg.Paths.ExportsDir
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(ws.root, dir)
}

func resolveWorkspaceRoot(workspaceFlag string) (root string, found bool, err error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, fileExists(filepath.Join(abs, workspacefinder.ConfigFile)), nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	r, err := locator.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, false, nil
		}
		return "", false, err
	}
	return r, true, nil
}

// readInput joins positional URLs and the contents of every --file.
// "-" reads standard input.
func readInput(src *urlsource.Loader, stdin io.Reader, args, files []string) (string, error) {
	parts := make([]string, 0, len(files)+1)
	if len(args) > 0 {
		parts = append(parts, strings.Join(args, "\n"))
	}

	for _, f := range files {
		var (
			text string
			err  error
		)
		if f == "-" {
			text, err = src.LoadReader("-", stdin)
		} else {
			text, err = src.Load(f)
		}
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n"), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
