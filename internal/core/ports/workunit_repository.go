package ports

import (
	"context"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// WorkUnitRepository defines persistence operations for work units.
type WorkUnitRepository interface {
	// Insert stores w with a store-assigned monotonically increasing id
	// and sets w.ID on success.
	Insert(ctx context.Context, w *domain.WorkUnit) error

	// List returns all work units in the store's natural order.
	List(ctx context.Context) ([]domain.WorkUnit, error)

	// UpdateStatus atomically sets the status of the work unit with the
	// given id, but only when its stored owner equals owner. It reports
	// whether a document matched; the caller cannot tell a missing id
	// from an ownership mismatch.
	UpdateStatus(ctx context.Context, id int64, owner, status string) (bool, error)
}
