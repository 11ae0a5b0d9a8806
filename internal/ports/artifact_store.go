package ports

import "github.com/aalvaropc/linkcheck/internal/domain"

// ArtifactStore persists batch outcomes for later inspection.
type ArtifactStore interface {
	SaveOutcome(out domain.BatchOutcome) (id string, err error)
}
