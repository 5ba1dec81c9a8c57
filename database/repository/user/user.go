// Package userRepo stores platform users.
package userRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"smarthome/database"
	"smarthome/database/repository"
	"smarthome/models"
	"smarthome/utils"
)

// UserRepository defines the storage operations for users.
type UserRepository interface {
	UpsertByEmail(email string, fields bson.M) (*models.User, error)
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("Failed to create user indexes", zap.Error(err))
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// UpsertByEmail overwrites all supplied fields on the user keyed by email,
// creating the document when it does not exist. The id is assigned once on
// insert and never reassigned.
func (r *MongoUserRepo) UpsertByEmail(email string, fields bson.M) (*models.User, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	set := bson.M{"updatedAt": now}
	for k, v := range fields {
		// Never let the payload override the stored key or timestamps.
		if k == "_id" || k == "createdAt" || k == "updatedAt" {
			continue
		}
		set[k] = v
	}
	set["email"] = email

	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": repository.NewID(), "createdAt": now},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to upsert user with email %s: %w", email, err)
	}
	return &user, nil
}
