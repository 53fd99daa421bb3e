package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// ProjectRepository persists projects in MongoDB.
type ProjectRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) *ProjectRepository {
	return &ProjectRepository{db: db, coll: db.Collection(projectsCollection)}
}

func (r *ProjectRepository) Insert(ctx context.Context, p *domain.Project) error {
	id, err := nextID(ctx, r.db, projectsCollection)
	if err != nil {
		return err
	}

	p.ID = id
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer cursor.Close(ctx)

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("decode projects: %w", err)
	}
	return projects, nil
}
