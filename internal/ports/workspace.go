package ports

import "github.com/aalvaropc/linkcheck/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
