package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"receptionist/database"
	appointmentRepo "receptionist/database/repository/appointment"
	calendarRepo "receptionist/database/repository/calendar"
	"receptionist/models"
	"receptionist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidFormat   = utils.NewValidationError("invalid_format", "Invalid date or time format. Use YYYY-MM-DD and HH:MM.")
	ErrPastDate        = utils.NewPolicyError("past_date", "Cannot book past dates.")
	ErrSlotUnavailable = utils.NewPolicyError("slot_unavailable", "Requested time slot is unavailable.")
	ErrMissingFields   = utils.NewValidationError("missing_fields", "customer_name and service are required.")
)

// BookingService books calendar slots and lists appointments.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListAvailableSlots(ctx context.Context, date string) ([]models.CalendarSlot, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Slots        calendarRepo.SlotRepository
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
	// Now is the service clock; tests pin it.
	Now   func() time.Time
	NewID func() string
}

func NewBookingService(slots calendarRepo.SlotRepository, appts appointmentRepo.AppointmentRepository, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Slots:        slots,
		Appointments: appts,
		Logger:       logger.Named("booking"),
		Now:          time.Now,
		NewID:        uuid.NewString,
	}
}

func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Appointment, error) {
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.Service = strings.TrimSpace(req.Service)
	if req.CustomerName == "" || req.Service == "" {
		utils.BookingsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrMissingFields
	}

	day, err := time.Parse(DateLayout, req.Date)
	if err != nil {
		utils.BookingsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidFormat
	}
	if _, err := time.Parse(TimeLayout, req.Time); err != nil {
		utils.BookingsTotal.WithLabelValues("invalid").Inc()
		return nil, ErrInvalidFormat
	}

	if day.Before(today(s.Now())) {
		utils.BookingsTotal.WithLabelValues("past_date").Inc()
		return nil, ErrPastDate
	}

	slot, err := s.Slots.ReserveAvailable(ctx, req.Date, req.Time)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			utils.BookingsTotal.WithLabelValues("unavailable").Inc()
			return nil, ErrSlotUnavailable
		}
		utils.BookingsTotal.WithLabelValues("error").Inc()
		return nil, utils.Internal("reserve slot", err)
	}

	appt := &models.Appointment{
		ID:           s.NewID(),
		CustomerName: req.CustomerName,
		Service:      req.Service,
		Date:         req.Date,
		Time:         req.Time,
		CreatedAt:    s.Now().UTC(),
	}
	if err := s.Appointments.Create(ctx, appt); err != nil {
		// The slot stays booked with no appointment behind it.
		s.Logger.Error("slot reserved but appointment insert failed",
			zap.String("date", slot.Date),
			zap.String("start_time", slot.StartTime),
			zap.String("customer", appt.CustomerName),
			zap.Error(err),
		)
		utils.BookingsTotal.WithLabelValues("error").Inc()
		return nil, utils.Internal("create appointment", err)
	}

	utils.BookingsTotal.WithLabelValues("booked").Inc()
	s.Logger.Info("appointment booked",
		zap.String("appointment_id", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
	)
	return appt, nil
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Appointments.List(ctx)
	if err != nil {
		return nil, utils.Internal("list appointments", err)
	}
	if appts == nil {
		appts = []models.Appointment{}
	}
	return appts, nil
}

// ListAvailableSlots lists open slots, optionally for a single date.
func (s *DefaultBookingService) ListAvailableSlots(ctx context.Context, date string) ([]models.CalendarSlot, error) {
	if date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, ErrInvalidFormat
		}
	}
	slots, err := s.Slots.ListAvailable(ctx, date)
	if err != nil {
		return nil, utils.Internal("list slots", err)
	}
	if slots == nil {
		slots = []models.CalendarSlot{}
	}
	return slots, nil
}

// today returns t's calendar date at UTC midnight, comparable with dates
// parsed using DateLayout.
func today(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
