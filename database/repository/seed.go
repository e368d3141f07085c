package repository

import (
	"context"
	"errors"
	"fmt"

	"receptionist/database"
	"receptionist/models"

	"go.uber.org/zap"
)

// SampleBusiness is inserted when no profile exists.
var SampleBusiness = models.BusinessProfile{
	Name: "TechFix Solutions",
	Services: []models.Service{
		{Name: "Laptop Repair", Description: "Fix hardware and software issues", Price: 50},
		{Name: "Mobile Repair", Description: "Screen replacement and battery fix", Price: 30},
		{Name: "Data Recovery", Description: "Recover lost files from hard drives", Price: 80},
		{Name: "Virus Removal", Description: "Remove malware and optimize performance", Price: 40},
		{Name: "Networking Support", Description: "Set up and troubleshoot WiFi networks", Price: 60},
		{Name: "Software Installation", Description: "Install and configure software applications", Price: 25},
		{Name: "Printer Repair", Description: "Fix paper jams and connectivity issues", Price: 35},
		{Name: "Battery Replacement", Description: "Replace laptop and mobile batteries", Price: 45},
		{Name: "Screen Replacement", Description: "Replace cracked or damaged screens", Price: 90},
		{Name: "Custom PC Build", Description: "Assemble and optimize custom PCs", Price: 150},
	},
	OperatingHours: models.OperatingHours{Open: "09:00 AM", Close: "06:00 PM"},
	ContactInfo:    models.ContactInfo{Phone: "+123456789", Email: "info@techfix.com"},
}

// SampleSlots is inserted when the calendar is empty.
var SampleSlots = []models.CalendarSlot{
	{Date: "2025-03-01", StartTime: "09:00", EndTime: "10:00", Available: true},
	{Date: "2025-03-01", StartTime: "10:00", EndTime: "11:00", Available: true},
	{Date: "2025-03-02", StartTime: "09:00", EndTime: "10:00", Available: true},
}

// Seed inserts the sample profile and slots if their collections are empty.
func (r *Repositories) Seed(ctx context.Context, logger *zap.Logger) error {
	_, err := r.Business.Get(ctx)
	switch {
	case errors.Is(err, database.ErrNotFound):
		profile := SampleBusiness
		if err := r.Business.Create(ctx, &profile); err != nil {
			return fmt.Errorf("seed business profile: %w", err)
		}
		logger.Info("sample business profile inserted", zap.String("business", profile.Name))
	case err != nil:
		return fmt.Errorf("seed business profile: %w", err)
	}

	n, err := r.Slots.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed slots: %w", err)
	}
	if n == 0 {
		if err := r.Slots.CreateMany(ctx, SampleSlots); err != nil {
			return fmt.Errorf("seed slots: %w", err)
		}
		logger.Info("sample slots inserted", zap.Int("count", len(SampleSlots)))
	}
	return nil
}
