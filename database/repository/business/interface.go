package businessRepo

import (
	"context"
	"time"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BusinessRepository interface {
	// Get returns the profile, or database.ErrNotFound when none was stored.
	Get(ctx context.Context) (*models.BusinessProfile, error)
	Create(ctx context.Context, profile *models.BusinessProfile) error
}

type mongoBusinessRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBusinessRepo constructs a BusinessRepository over the business_data collection.
func NewMongoBusinessRepo(db *mongo.Database, timeout time.Duration) BusinessRepository {
	return &mongoBusinessRepo{
		coll:    db.Collection(database.BusinessCollection),
		timeout: timeout,
	}
}
