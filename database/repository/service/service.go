// Package serviceRepo reads the service catalog. The catalog is maintained
// out of band; this repository never writes it.
package serviceRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"smarthome/database"
	"smarthome/models"
)

// ServiceRepository defines read access to the service catalog.
type ServiceRepository interface {
	GetByID(id string) (*models.Service, error)
	GetAll() ([]models.Service, error)
	Sample(limit int64) ([]models.ServiceSummary, error)
	DistinctCategories() ([]string, error)
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	return &MongoServiceRepo{coll: database.Collection("services")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
