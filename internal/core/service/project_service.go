package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/labos-hq/labos-backend/internal/core/domain"
	"github.com/labos-hq/labos-backend/internal/core/ports"
)

// ProjectService implements project creation and listing.
type ProjectService struct {
	repo ports.ProjectRepository
	log  zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, log zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, log: log}
}

// Create inserts a new project. Only admins may create projects; the
// description defaults to the empty string when absent.
func (s *ProjectService) Create(ctx context.Context, caller domain.Caller, input ports.CreateProjectInput) (*domain.Project, error) {
	if !caller.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if input.Name == "" {
		return nil, domain.ErrMissingField
	}

	project := &domain.Project{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.Insert(ctx, project); err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create project")
		return nil, err
	}

	s.log.Info().Int64("project_id", project.ID).Str("name", project.Name).Str("created_by", caller.Username).Msg("project created")
	return project, nil
}

// List returns all projects in the store's natural order.
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}
