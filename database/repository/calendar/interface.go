package calendarRepo

import (
	"context"
	"time"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type SlotRepository interface {
	// ReserveAvailable atomically flips the slot matching date and start time
	// from available to booked and returns it. It returns database.ErrNotFound
	// when no such slot is currently available.
	ReserveAvailable(ctx context.Context, date, startTime string) (*models.CalendarSlot, error)
	// ListAvailable returns available slots ordered by date and start time;
	// an empty date lists every date.
	ListAvailable(ctx context.Context, date string) ([]models.CalendarSlot, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, slots []models.CalendarSlot) error
}

type mongoSlotRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoSlotRepo constructs a SlotRepository over the calendar collection.
func NewMongoSlotRepo(db *mongo.Database, timeout time.Duration) SlotRepository {
	return &mongoSlotRepo{
		coll:    db.Collection(database.CalendarCollection),
		timeout: timeout,
	}
}
