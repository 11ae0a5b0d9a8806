package ports

import (
	"context"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// Prober performs one bounded-time reachability check. It never returns an
// error: transport and HTTP failures are folded into a NotWorking result.
type Prober interface {
	Probe(ctx context.Context, url string) domain.CheckResult
}
