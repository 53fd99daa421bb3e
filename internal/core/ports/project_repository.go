package ports

import (
	"context"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	// Insert stores p with a store-assigned monotonically increasing id
	// and sets p.ID on success.
	Insert(ctx context.Context, p *domain.Project) error

	// List returns all projects in the store's natural order.
	List(ctx context.Context) ([]domain.Project, error)
}
