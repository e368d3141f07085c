package calendarRepo

import (
	"context"
	"fmt"

	"receptionist/database"
	"receptionist/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSlotRepo) ReserveAvailable(ctx context.Context, date, startTime string) (*models.CalendarSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// The available=true term makes this a compare-and-set: of two concurrent
	// reservations only one can match.
	filter := bson.M{
		"date":       date,
		"start_time": startTime,
		"available":  true,
	}
	update := bson.M{"$set": bson.M{"available": false}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var slot models.CalendarSlot
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&slot); err != nil {
		return nil, database.Translate(err)
	}
	return &slot, nil
}

func (r *mongoSlotRepo) ListAvailable(ctx context.Context, date string) ([]models.CalendarSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"available": true}
	if date != "" {
		filter["date"] = date
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start_time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	slots := []models.CalendarSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count slots: %w", err)
	}
	return n, nil
}

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.CalendarSlot) error {
	if len(slots) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		docs[i] = slot
	}
	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("failed to insert slots: %w", err)
	}
	return nil
}
