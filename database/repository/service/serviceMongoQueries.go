package serviceRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smarthome/database/repository"
	"smarthome/models"
)

// GetByID resolves a service by its client-supplied identifier. The exact
// string form is tried before the parsed ObjectID form; see
// repository.IDFilters.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	for _, filter := range repository.IDFilters(id) {
		var svc models.Service
		err := r.coll.FindOne(ctx, filter).Decode(&svc)
		if err == nil {
			return &svc, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
		}
	}
	return nil, nil
}

// GetAll retrieves the full catalog.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// Sample returns up to limit services projected to id and name, used as the
// diagnostic payload on failed lookups.
func (r *MongoServiceRepo) Sample(limit int64) ([]models.ServiceSummary, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetProjection(bson.M{"_id": 1, "service_name": 1})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to sample services: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.ServiceSummary
	for cursor.Next(ctx) {
		var s models.ServiceSummary
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DistinctCategories lists the distinct category values in the catalog.
func (r *MongoServiceRepo) DistinctCategories() ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct categories: %w", err)
	}

	categories := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}
