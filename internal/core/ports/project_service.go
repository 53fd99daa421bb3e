package ports

import (
	"context"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a project.
type CreateProjectInput struct {
	Name        string
	Description string // optional, defaults to ""
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	// Create requires the admin role; other callers get domain.ErrForbidden.
	Create(ctx context.Context, caller domain.Caller, input CreateProjectInput) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
}
