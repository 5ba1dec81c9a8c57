package bookingRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"smarthome/database/repository"
	"smarthome/models"
)

// Create inserts a new booking document with a canonical string id.
func (r *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = repository.NewID()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateFields applies a partial $set to the booking resolved from id,
// refreshing updatedAt. A match on either identifier form counts as found,
// even when the update itself was a no-op, so ErrNotFound really means the
// document does not exist.
func (r *MongoBookingRepo) UpdateFields(id string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	update := bson.M{"$set": set}

	for _, filter := range repository.IDFilters(id) {
		result, err := r.coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("failed to update booking with id %s: %w", id, err)
		}
		if result.MatchedCount > 0 {
			return nil
		}
	}
	return ErrNotFound
}
