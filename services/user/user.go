// Package user implements the user upsert flow.
package user

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	userRepo "smarthome/database/repository/user"
	"smarthome/models"
)

// UserService manages platform users.
type UserService interface {
	UpsertUser(fields bson.M) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// MissingEmailError signals an upsert payload without the email key.
type MissingEmailError struct{}

func (MissingEmailError) Error() string { return "email is required" }

// UpsertUser creates or overwrites the user keyed by email. All supplied
// fields replace the stored ones; createdAt survives from the first insert.
func (s *DefaultUserService) UpsertUser(fields bson.M) (*models.User, error) {
	email, _ := fields["email"].(string)
	if email == "" {
		return nil, MissingEmailError{}
	}

	usr, err := s.Repo.UpsertByEmail(email, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	s.Logger.Info("User upserted",
		zap.String("userId", usr.ID), zap.String("email", email))
	return usr, nil
}
