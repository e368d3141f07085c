package businessRepo

import (
	"context"
	"fmt"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (r *mongoBusinessRepo) Get(ctx context.Context) (*models.BusinessProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var profile models.BusinessProfile
	if err := r.coll.FindOne(ctx, bson.M{}).Decode(&profile); err != nil {
		return nil, database.Translate(err)
	}
	return &profile, nil
}

func (r *mongoBusinessRepo) Create(ctx context.Context, profile *models.BusinessProfile) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to insert business profile: %w", err)
	}
	return nil
}
