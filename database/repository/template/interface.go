package templateRepo

import (
	"context"
	"time"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type TemplateRepository interface {
	// Upsert replaces the template stored for tpl.QueryType, creating it if needed.
	Upsert(ctx context.Context, tpl *models.CustomResponseTemplate) error
	// GetByQueryType returns database.ErrNotFound when no template exists.
	GetByQueryType(ctx context.Context, queryType string) (*models.CustomResponseTemplate, error)
	List(ctx context.Context) ([]models.CustomResponseTemplate, error)
}

type mongoTemplateRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoTemplateRepo constructs a TemplateRepository over the custom_responses collection.
func NewMongoTemplateRepo(db *mongo.Database, timeout time.Duration) TemplateRepository {
	return &mongoTemplateRepo{
		coll:    db.Collection(database.TemplateCollection),
		timeout: timeout,
	}
}
