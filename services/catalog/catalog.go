// Package catalog serves the read-only service catalog and the featured
// decorator listing.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	decoratorRepo "smarthome/database/repository/decorator"
	serviceRepo "smarthome/database/repository/service"
	"smarthome/models"
)

const (
	servicesCacheKey = "catalog:services"
	// diagnosticSampleSize bounds the sample returned on a failed lookup.
	diagnosticSampleSize = 5
	topDecoratorsLimit   = 6
)

// CatalogService exposes catalog reads.
type CatalogService interface {
	ListServices() ([]models.Service, error)
	GetServiceByID(id string) (*models.Service, error)
	ListCategories() ([]string, error)
	TopDecorators() ([]models.Decorator, error)
}

// Cache is the slice of the Redis client the catalog needs. Satisfied by
// *redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// DefaultCatalogService is the production implementation. Cache may be nil,
// in which case every read goes to the store.
type DefaultCatalogService struct {
	Services   serviceRepo.ServiceRepository
	Decorators decoratorRepo.DecoratorRepository
	Cache      Cache
	CacheTTL   time.Duration
	Logger     *zap.Logger
}

// ServiceNotFoundError carries the diagnostic sample of stored services so
// clients can see which identifiers actually exist.
type ServiceNotFoundError struct {
	ID        string
	Available []models.ServiceSummary
}

func (e ServiceNotFoundError) Error() string { return "Service not found" }

// ListServices returns the full catalog, read through the Redis cache.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	ctx := context.Background()

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, servicesCacheKey).Result()
		if err == nil {
			var services []models.Service
			if err := json.Unmarshal([]byte(cached), &services); err == nil {
				return services, nil
			}
		} else if err != redis.Nil {
			s.Logger.Warn("Catalog cache read failed", zap.Error(err))
		}
	}

	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(services); err == nil {
			if err := s.Cache.Set(ctx, servicesCacheKey, data, s.CacheTTL).Err(); err != nil {
				s.Logger.Warn("Catalog cache write failed", zap.Error(err))
			}
		}
	}
	return services, nil
}

// GetServiceByID resolves one catalog entry. On a miss the returned error
// carries a bounded sample of stored services.
func (s *DefaultCatalogService) GetServiceByID(id string) (*models.Service, error) {
	svc, err := s.Services.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service %s: %w", id, err)
	}
	if svc != nil {
		return svc, nil
	}

	sample, sampleErr := s.Services.Sample(diagnosticSampleSize)
	if sampleErr != nil {
		s.Logger.Warn("Failed to sample services for diagnostics", zap.Error(sampleErr))
	}
	return nil, ServiceNotFoundError{ID: id, Available: sample}
}

// ListCategories returns the distinct category values.
func (s *DefaultCatalogService) ListCategories() ([]string, error) {
	categories, err := s.Services.DistinctCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// TopDecorators returns the highest rated decorators.
func (s *DefaultCatalogService) TopDecorators() ([]models.Decorator, error) {
	decorators, err := s.Decorators.GetTopRated(topDecoratorsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list top decorators: %w", err)
	}
	return decorators, nil
}
