package repository

import (
	"context"
	"time"

	appointmentRepo "receptionist/database/repository/appointment"
	businessRepo "receptionist/database/repository/business"
	calendarRepo "receptionist/database/repository/calendar"
	queryLogRepo "receptionist/database/repository/querylog"
	templateRepo "receptionist/database/repository/template"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Repositories groups the per-collection repositories built over one database.
type Repositories struct {
	Business    businessRepo.BusinessRepository
	Slots       calendarRepo.SlotRepository
	Appointment appointmentRepo.AppointmentRepository
	Templates   templateRepo.TemplateRepository
	QueryLog    queryLogRepo.QueryLogRepository
}

// NewMongoRepositories wires every repository to db with a per-call timeout.
func NewMongoRepositories(db *mongo.Database, timeout time.Duration) *Repositories {
	return &Repositories{
		Business:    businessRepo.NewMongoBusinessRepo(db, timeout),
		Slots:       calendarRepo.NewMongoSlotRepo(db, timeout),
		Appointment: appointmentRepo.NewMongoAppointmentRepo(db, timeout),
		Templates:   templateRepo.NewMongoTemplateRepo(db, timeout),
		QueryLog:    queryLogRepo.NewMongoQueryLogRepo(db, timeout),
	}
}

type indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes creates indexes for every repository that declares them.
// Failures are logged; the server can run without them.
func (r *Repositories) EnsureIndexes(ctx context.Context, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, repo := range []interface{}{r.Business, r.Slots, r.Appointment, r.Templates, r.QueryLog} {
		idx, ok := repo.(indexer)
		if !ok {
			continue
		}
		if err := idx.EnsureIndexes(ctx); err != nil {
			logger.Warn("index creation failed", zap.Error(err))
		}
	}
}
