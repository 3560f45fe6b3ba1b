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
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCommentRepository backs comments with the comments collection.
type MongoCommentRepository struct {
	coll *mongo.Collection
}

func newMongoCommentRepository(db *mongo.Database) portsrepo.CommentRepository {
	return &MongoCommentRepository{coll: db.Collection("comments")}
}

var _ portsrepo.CommentRepository = (*MongoCommentRepository)(nil)

func toModelComment(d domain.Comment) (models.Comment, error) {
	article, err := bson.ObjectIDFromHex(d.ArticleID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("invalid article id %q: %w", d.ArticleID, err)
	}
	author, err := bson.ObjectIDFromHex(d.AuthorID)
	if err != nil {
		return models.Comment{}, fmt.Errorf("invalid author id %q: %w", d.AuthorID, err)
	}
	m := models.Comment{
		Content:   d.Content,
		Article:   article,
		Author:    author,
		CreatedAt: d.CreatedAt,
	}
	if d.CommentID != "" {
		id, err := bson.ObjectIDFromHex(d.CommentID)
		if err != nil {
			return models.Comment{}, fmt.Errorf("invalid comment id %q: %w", d.CommentID, err)
		}
		m.ID = id
	}
	return m, nil
}

func toDomainComment(m models.Comment) domain.Comment {
	return domain.Comment{
		CommentID: m.ID.Hex(),
		Content:   m.Content,
		ArticleID: m.Article.Hex(),
		AuthorID:  m.Author.Hex(),
		CreatedAt: m.CreatedAt,
	}
}

func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	modelComment, err := toModelComment(comment)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.InsertOne(ctx, modelComment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	modelComment.ID = res.InsertedID.(bson.ObjectID)
	domainComment := toDomainComment(modelComment)
	return &domainComment, nil
}

func (r *MongoCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	var modelComment models.Comment
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&modelComment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find comment %s: %w", commentID, err)
	}
	domainComment := toDomainComment(modelComment)
	return &domainComment, nil
}

func (r *MongoCommentRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Comment, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	var modelComments []models.Comment
	if err := cursor.All(ctx, &modelComments); err != nil {
		return nil, fmt.Errorf("failed to decode comments: %w", err)
	}
	comments := make([]domain.Comment, len(modelComments))
	for i, m := range modelComments {
		comments[i] = toDomainComment(m)
	}
	return comments, nil
}

func (r *MongoCommentRepository) FindCommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"article": id})
}

func (r *MongoCommentRepository) FindCommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error) {
	id, err := bson.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"author": id})
}

func (r *MongoCommentRepository) FindCommentsByIDs(ctx context.Context, commentIDs []string) ([]domain.Comment, error) {
	ids, err := objectIDs(commentIDs)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoCommentRepository) UpdateComment(ctx context.Context, commentID string, content string) error {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"content": content}})
	if err != nil {
		return fmt.Errorf("failed to update comment %s: %w", commentID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
