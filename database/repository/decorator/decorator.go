// Package decoratorRepo reads the featured decorator profiles.
package decoratorRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"smarthome/database"
	"smarthome/models"
)

// DecoratorRepository defines read access to decorator profiles.
type DecoratorRepository interface {
	GetTopRated(limit int64) ([]models.Decorator, error)
}

// MongoDecoratorRepo implements DecoratorRepository using MongoDB.
type MongoDecoratorRepo struct {
	coll *mongo.Collection
}

// NewMongoDecoratorRepo creates a new instance of DecoratorRepository using MongoDB.
func NewMongoDecoratorRepo() DecoratorRepository {
	return &MongoDecoratorRepo{coll: database.Collection("decorators")}
}

// GetTopRated returns up to limit decorators ordered by rating descending.
func (r *MongoDecoratorRepo) GetTopRated(limit int64) ([]models.Decorator, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve top decorators: %w", err)
	}
	defer cursor.Close(ctx)

	var decorators []models.Decorator
	for cursor.Next(ctx) {
		var d models.Decorator
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode decorator: %w", err)
		}
		decorators = append(decorators, d)
	}
	return decorators, nil
}
