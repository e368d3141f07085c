package appointmentRepo

import (
	"context"
	"time"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	List(ctx context.Context) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoAppointmentRepo constructs an AppointmentRepository over the appointments collection.
func NewMongoAppointmentRepo(db *mongo.Database, timeout time.Duration) AppointmentRepository {
	return &mongoAppointmentRepo{
		coll:    db.Collection(database.AppointmentCollection),
		timeout: timeout,
	}
}
