package queryLogRepo

import (
	"context"
	"fmt"
	"time"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// QueryLogRepository appends to the customer_queries audit trail.
type QueryLogRepository interface {
	Insert(ctx context.Context, entry *models.QueryLogEntry) error
}

type mongoQueryLogRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

func NewMongoQueryLogRepo(db *mongo.Database, timeout time.Duration) QueryLogRepository {
	return &mongoQueryLogRepo{
		coll:    db.Collection(database.QueryLogCollection),
		timeout: timeout,
	}
}

func (r *mongoQueryLogRepo) Insert(ctx context.Context, entry *models.QueryLogEntry) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert query log entry: %w", err)
	}
	return nil
}
