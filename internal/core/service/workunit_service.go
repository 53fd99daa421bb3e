package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labos-hq/labos-backend/internal/core/domain"
	"github.com/labos-hq/labos-backend/internal/core/ports"
)

// WorkUnitService implements work unit creation, listing, and
// owner-gated status updates.
type WorkUnitService struct {
	repo ports.WorkUnitRepository
	log  zerolog.Logger
}

func NewWorkUnitService(repo ports.WorkUnitRepository, log zerolog.Logger) *WorkUnitService {
	return &WorkUnitService{repo: repo, log: log}
}

// Create inserts a new work unit with status forced to "idea". Only
// admins may create; project id, title, and owner are required. The
// project id is stored as given, with no existence check against the
// projects collection.
func (s *WorkUnitService) Create(ctx context.Context, caller domain.Caller, input ports.CreateWorkUnitInput) (*domain.WorkUnit, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.ProjectID == 0 || input.Title == "" || input.Owner == "" {
		return nil, domain.ErrMissingField
	}

	unit := &domain.WorkUnit{
		ProjectID:   input.ProjectID,
		Title:       input.Title,
		Description: input.Description,
		Owner:       input.Owner,
		Status:      domain.StatusIdea,
	}
	if err := s.repo.Insert(ctx, unit); err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create work unit")
		return nil, err
	}

	s.log.Info().
		Int64("work_unit_id", unit.ID).
		Int64("project_id", unit.ProjectID).
		Str("owner", unit.Owner).
		Str("created_by", caller.Username).
		Msg("work unit created")
	return unit, nil
}

// List returns all work units in the store's natural order.
func (s *WorkUnitService) List(ctx context.Context) ([]domain.WorkUnit, error) {
	return s.repo.List(ctx)
}

// UpdateStatus overwrites the status of the caller's own work unit with
// the supplied value verbatim; there is no enumerated set of legal
// statuses. A missing work unit and one owned by somebody else both
// come back as ErrForbidden so ids cannot be probed.
func (s *WorkUnitService) UpdateStatus(ctx context.Context, caller domain.Caller, id int64, status string) error {
	if status == "" {
		return domain.ErrMissingField
	}

	matched, err := s.repo.UpdateStatus(ctx, id, caller.Username, status)
	if err != nil {
		s.log.Error().Err(err).Int64("work_unit_id", id).Msg("failed to update work unit status")
		return err
	}
	if !matched {
		return domain.ErrForbidden
	}

	s.log.Info().
		Int64("work_unit_id", id).
		Str("status", status).
		Str("updated_by", caller.Username).
		Msg("work unit status updated")
	return nil
}
