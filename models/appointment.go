package models

import "time"

// Appointment records a successful booking. Appointments are append-only.
type Appointment struct {
	ID           string    `bson:"_id" json:"_id"`
	CustomerName string    `bson:"customer_name" json:"customer_name"`
	Service      string    `bson:"service" json:"service"`
	Date         string    `bson:"date" json:"date"`
	Time         string    `bson:"time" json:"time"`
	CreatedAt    time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// BookingRequest is the body of POST /schedule.
type BookingRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Service      string `json:"service" binding:"required"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string `json:"time" binding:"required"` // HH:MM
}

// BookingResponse is returned by POST /schedule on success.
type BookingResponse struct {
	Message     string       `json:"message"`
	Appointment *Appointment `json:"appointment"`
}
