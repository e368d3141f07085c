package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names shared with the data already in production.
const (
	BusinessCollection    = "business_data"
	CalendarCollection    = "calendar"
	AppointmentCollection = "appointments"
	TemplateCollection    = "custom_responses"
	QueryLogCollection    = "customer_queries"
)

// ErrNotFound is returned by repositories when no document matches.
var ErrNotFound = errors.New("document not found")

// Connect opens the process-wide MongoDB client and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return client, nil
}

// Translate maps driver sentinel errors onto package errors.
func Translate(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
