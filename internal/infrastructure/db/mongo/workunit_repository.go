package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/labos-hq/labos-backend/internal/core/domain"
)

// WorkUnitRepository persists work units in MongoDB.
type WorkUnitRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewWorkUnitRepository(db *mongo.Database) *WorkUnitRepository {
	return &WorkUnitRepository{db: db, coll: db.Collection(workUnitsCollection)}
}

func (r *WorkUnitRepository) Insert(ctx context.Context, w *domain.WorkUnit) error {
	id, err := nextID(ctx, r.db, workUnitsCollection)
	if err != nil {
		return err
	}

	w.ID = id
	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("insert work unit: %w", err)
	}
	return nil
}

func (r *WorkUnitRepository) List(ctx context.Context) ([]domain.WorkUnit, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list work units: %w", err)
	}
	defer cursor.Close(ctx)

	units := []domain.WorkUnit{}
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("decode work units: %w", err)
	}
	return units, nil
}

// UpdateStatus sets the status of the work unit with the given id in a
// single filtered write. The owner is part of the filter, so a missing
// id and an ownership mismatch are indistinguishable in the result.
func (r *WorkUnitRepository) UpdateStatus(ctx context.Context, id int64, owner, status string) (bool, error) {
	res, err := r.coll.UpdateOne(
		ctx,
		bson.M{"id": id, "owner": owner},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, fmt.Errorf("update work unit status: %w", err)
	}
	return res.MatchedCount > 0, nil
}
