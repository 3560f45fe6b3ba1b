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

// MongoUserRepository backs the credential store and follow graph with the
// users collection.
type MongoUserRepository struct {
	coll *mongo.Collection
}

func newMongoUserRepository(db *mongo.Database) portsrepo.UserRepository {
	return &MongoUserRepository{coll: db.Collection("users")}
}

var _ portsrepo.UserRepository = (*MongoUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) (models.User, error) {
	m := models.User{
		Username:   d.Username,
		Name:       d.Name,
		Email:      d.Email,
		Password:   d.PasswordHash,
		Bio:        d.Bio,
		Avatar:     d.Avatar,
		CreatedAt:  d.CreatedAt,
		Followers:  []bson.ObjectID{},
		Followings: []bson.ObjectID{},
	}
	if d.UserID != "" {
		id, err := bson.ObjectIDFromHex(d.UserID)
		if err != nil {
			return models.User{}, fmt.Errorf("invalid user id %q: %w", d.UserID, err)
		}
		m.ID = id
	}
	if d.RefreshToken != "" {
		token := d.RefreshToken
		m.RefreshToken = &token
	}
	return m, nil
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.ID.Hex(),
		Username:     m.Username,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.Password,
		Bio:          m.Bio,
		Avatar:       m.Avatar,
		CreatedAt:    m.CreatedAt,
		Followers:    hexIDs(m.Followers),
		Followings:   hexIDs(m.Followings),
	}
	if m.RefreshToken != nil {
		d.RefreshToken = *m.RefreshToken
	}
	return d
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser, err := toModelUser(user)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.InsertOne(ctx, modelUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	modelUser.ID = res.InsertedID.(bson.ObjectID)
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var modelUser models.User
	err := r.coll.FindOne(ctx, filter).Decode(&modelUser)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *MongoUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *MongoUserRepository) FindUsersByIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	ids, err := objectIDs(userIDs)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find users by ids: %w", err)
	}
	var modelUsers []models.User
	if err := cursor.All(ctx, &modelUsers); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	users := make([]domain.User, len(modelUsers))
	for i, m := range modelUsers {
		users[i] = toDomainUser(m)
	}
	return users, nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, userID string, name, bio, avatar *string) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	set := bson.M{}
	if name != nil {
		set["name"] = *name
	}
	if bio != nil {
		set["bio"] = *bio
	}
	if avatar != nil {
		set["avatar"] = *avatar
	}
	if len(set) == 0 {
		return nil
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) DeleteUser(ctx context.Context, userID string) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetRefreshToken(ctx context.Context, userID string, token *string) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	var update bson.M
	if token == nil {
		// Unset rather than store null so the partial unique index on
		// refreshToken never sees logged-out users.
		update = bson.M{"$unset": bson.M{"refreshToken": ""}}
	} else {
		update = bson.M{"$set": bson.M{"refreshToken": *token}}
	}
	res, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to set refresh token for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetPasswordHash(ctx context.Context, userID string, passwordHash string) error {
	id, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"password": passwordHash}})
	if err != nil {
		return fmt.Errorf("failed to set password hash for user %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoUserRepository) Follow(ctx context.Context, userID, targetID string) error {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	tid, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	if _, err := r.coll.UpdateByID(ctx, uid, bson.M{"$addToSet": bson.M{"followings": tid}}); err != nil {
		return fmt.Errorf("failed to add following for user %s: %w", userID, err)
	}
	if _, err := r.coll.UpdateByID(ctx, tid, bson.M{"$addToSet": bson.M{"followers": uid}}); err != nil {
		return fmt.Errorf("failed to add follower for user %s: %w", targetID, err)
	}
	return nil
}

func (r *MongoUserRepository) Unfollow(ctx context.Context, userID, targetID string) error {
	uid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	tid, err := bson.ObjectIDFromHex(targetID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	if _, err := r.coll.UpdateByID(ctx, uid, bson.M{"$pull": bson.M{"followings": tid}}); err != nil {
		return fmt.Errorf("failed to remove following for user %s: %w", userID, err)
	}
	if _, err := r.coll.UpdateByID(ctx, tid, bson.M{"$pull": bson.M{"followers": uid}}); err != nil {
		return fmt.Errorf("failed to remove follower for user %s: %w", targetID, err)
	}
	return nil
}
