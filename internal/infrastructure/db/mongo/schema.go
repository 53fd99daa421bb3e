package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	projectsCollection  = "projects"
	workUnitsCollection = "work_units"
	updatesCollection   = "updates"
)

// EnsureSchema creates the indexes the repositories rely on. The updates
// collection is part of the storage contract even though no operation
// writes to it yet.
func EnsureSchema(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	for _, coll := range []string{projectsCollection, workUnitsCollection, updatesCollection} {
		_, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("ensure id index on %s: %w", coll, err)
		}
	}

	_, err := db.Collection(updatesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "work_unit_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("ensure work_unit_id index on %s: %w", updatesCollection, err)
	}

	return nil
}
