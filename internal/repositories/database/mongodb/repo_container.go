package mongodb

import (
	"context"
	"fmt"

	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// NewRepositoryProvider wires all Mongo-backed repositories against a database.
func NewRepositoryProvider(db *mongo.Database) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		User:    newMongoUserRepository(db),
		Article: newMongoArticleRepository(db),
		Comment: newMongoCommentRepository(db),
		Tag:     newMongoTagRepository(db),
	}
}

// EnsureIndexes creates the unique indexes the core relies on as its source
// of truth for conflicts: users.email, users.username, users.refreshToken
// (partial, only while a token string is set) and tags.name. The pre-checks
// in the services are an optimization; these indexes close the
// check-then-insert race.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "refreshToken", Value: 1}},
			Options: options.Index().SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: "refreshToken", Value: bson.D{{Key: "$type", Value: "string"}}}}),
		},
	}
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	tagIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := db.Collection("tags").Indexes().CreateMany(ctx, tagIndexes); err != nil {
		return fmt.Errorf("failed to create tag indexes: %w", err)
	}

	articleIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "author", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "tags", Value: 1}}},
	}
	if _, err := db.Collection("articles").Indexes().CreateMany(ctx, articleIndexes); err != nil {
		return fmt.Errorf("failed to create article indexes: %w", err)
	}

	commentIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "article", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection("comments").Indexes().CreateMany(ctx, commentIndexes); err != nil {
		return fmt.Errorf("failed to create comment indexes: %w", err)
	}

	return nil
}
