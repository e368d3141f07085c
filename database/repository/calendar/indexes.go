package calendarRepo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the reservation lookup index on the calendar collection.
func (r *mongoSlotRepo) EnsureIndexes(ctx context.Context) error {
	indexModels := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "start_time", Value: 1},
				{Key: "available", Value: 1},
			},
			Options: options.Index().SetName("date_start_available_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create calendar indexes: %w", err)
	}
	return nil
}
