package ports

import (
	"context"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// CreateWorkUnitInput carries the data needed to create a work unit.
// Status is intentionally absent: every work unit starts as "idea"
// regardless of what the caller sends over the wire.
type CreateWorkUnitInput struct {
	ProjectID   int64
	Title       string
	Description string // optional, defaults to ""
	Owner       string // username responsible for the work unit
}

// WorkUnitService defines use-case operations for work units.
type WorkUnitService interface {
	// Create requires the admin role; other callers get domain.ErrForbidden.
	// ProjectID, Title, and Owner are required (domain.ErrMissingField).
	Create(ctx context.Context, caller domain.Caller, input CreateWorkUnitInput) (*domain.WorkUnit, error)

	List(ctx context.Context) ([]domain.WorkUnit, error)

	// UpdateStatus overwrites the work unit's status with the supplied
	// value verbatim. It succeeds only when caller.Username matches the
	// stored owner; a missing id and a non-owner both surface
	// domain.ErrForbidden.
	UpdateStatus(ctx context.Context, caller domain.Caller, id int64, status string) error
}
