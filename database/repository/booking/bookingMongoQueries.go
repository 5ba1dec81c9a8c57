package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smarthome/database/repository"
	"smarthome/models"
)

// GetByID resolves a booking by its client-supplied identifier, trying the
// exact string form before the parsed ObjectID form.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	for _, filter := range repository.IDFilters(id) {
		var booking models.Booking
		err := r.coll.FindOne(ctx, filter).Decode(&booking)
		if err == nil {
			return &booking, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
		}
	}
	return nil, ErrNotFound
}

// GetByUser retrieves all bookings owned by userId, newest first.
func (r *MongoBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// FindStalePending lists bookings still pending and unpaid that were created
// before the cutoff. Used by the expiry worker.
func (r *MongoBookingRepo) FindStalePending(before time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status":        models.BookingStatusPending,
		"paymentStatus": models.PaymentStatusUnpaid,
		"createdAt":     bson.M{"$lt": before},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stale bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
