package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	"github.com/median-app/median-backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoTagRepository backs tags with the tags collection.
type MongoTagRepository struct {
	coll *mongo.Collection
}

func newMongoTagRepository(db *mongo.Database) portsrepo.TagRepository {
	return &MongoTagRepository{coll: db.Collection("tags")}
}

var _ portsrepo.TagRepository = (*MongoTagRepository)(nil)

func toDomainTag(m models.Tag) domain.Tag {
	return domain.Tag{TagID: m.ID.Hex(), Name: m.Name}
}

func (r *MongoTagRepository) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	modelTag := models.Tag{Name: name}
	res, err := r.coll.InsertOne(ctx, modelTag)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert tag %q: %w", name, err)
	}
	modelTag.ID = res.InsertedID.(bson.ObjectID)
	domainTag := toDomainTag(modelTag)
	return &domainTag, nil
}

func (r *MongoTagRepository) FindTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	var modelTag models.Tag
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&modelTag)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tag %q: %w", name, err)
	}
	domainTag := toDomainTag(modelTag)
	return &domainTag, nil
}

func (r *MongoTagRepository) FindTags(ctx context.Context) ([]domain.Tag, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoTagRepository) FindTagsByIDs(ctx context.Context, tagIDs []string) ([]domain.Tag, error) {
	ids, err := objectIDs(tagIDs)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoTagRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Tag, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find tags: %w", err)
	}
	var modelTags []models.Tag
	if err := cursor.All(ctx, &modelTags); err != nil {
		return nil, fmt.Errorf("failed to decode tags: %w", err)
	}
	tags := make([]domain.Tag, len(modelTags))
	for i, m := range modelTags {
		tags[i] = toDomainTag(m)
	}
	return tags, nil
}
