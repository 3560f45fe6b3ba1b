package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	"github.com/median-app/median-backend/internal/models"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoArticleRepository backs articles with the articles collection.
type MongoArticleRepository struct {
	coll *mongo.Collection
}

func newMongoArticleRepository(db *mongo.Database) portsrepo.ArticleRepository {
	return &MongoArticleRepository{coll: db.Collection("articles")}
}

var _ portsrepo.ArticleRepository = (*MongoArticleRepository)(nil)

func toModelArticle(d domain.Article) (models.Article, error) {
	author, err := bson.ObjectIDFromHex(d.AuthorID)
	if err != nil {
		return models.Article{}, fmt.Errorf("invalid author id %q: %w", d.AuthorID, err)
	}
	tags, err := objectIDs(d.TagIDs)
	if err != nil {
		return models.Article{}, err
	}
	comments, err := objectIDs(d.CommentIDs)
	if err != nil {
		return models.Article{}, err
	}
	m := models.Article{
		Title:     d.Title,
		Content:   d.Content,
		Summary:   d.Summary,
		Image:     d.Image,
		Author:    author,
		Tags:      tags,
		Comments:  comments,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.ArticleID != "" {
		id, err := bson.ObjectIDFromHex(d.ArticleID)
		if err != nil {
			return models.Article{}, fmt.Errorf("invalid article id %q: %w", d.ArticleID, err)
		}
		m.ID = id
	}
	return m, nil
}

func toDomainArticle(m models.Article) domain.Article {
	return domain.Article{
		ArticleID:  m.ID.Hex(),
		Title:      m.Title,
		Content:    m.Content,
		Summary:    m.Summary,
		Image:      m.Image,
		AuthorID:   m.Author.Hex(),
		TagIDs:     hexIDs(m.Tags),
		CommentIDs: hexIDs(m.Comments),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *MongoArticleRepository) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	modelArticle, err := toModelArticle(article)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.InsertOne(ctx, modelArticle)
	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}
	modelArticle.ID = res.InsertedID.(bson.ObjectID)
	domainArticle := toDomainArticle(modelArticle)
	return &domainArticle, nil
}

func (r *MongoArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	id, err := bson.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	var modelArticle models.Article
	err = r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&modelArticle)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article %s: %w", articleID, err)
	}
	domainArticle := toDomainArticle(modelArticle)
	return &domainArticle, nil
}

func (r *MongoArticleRepository) findMany(ctx context.Context, filter bson.M) ([]domain.Article, error) {
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find articles: %w", err)
	}
	var modelArticles []models.Article
	if err := cursor.All(ctx, &modelArticles); err != nil {
		return nil, fmt.Errorf("failed to decode articles: %w", err)
	}
	articles := make([]domain.Article, len(modelArticles))
	for i, m := range modelArticles {
		articles[i] = toDomainArticle(m)
	}
	return articles, nil
}

func (r *MongoArticleRepository) FindArticles(ctx context.Context) ([]domain.Article, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *MongoArticleRepository) FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	id, err := bson.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"author": id})
}

func (r *MongoArticleRepository) FindArticlesByTag(ctx context.Context, tagID string) ([]domain.Article, error) {
	id, err := bson.ObjectIDFromHex(tagID)
	if err != nil {
		return nil, apperrors.ErrNotFound
	}
	return r.findMany(ctx, bson.M{"tags": id})
}

func (r *MongoArticleRepository) UpdateArticle(ctx context.Context, articleID string, title, content, summary, image *string) error {
	id, err := bson.ObjectIDFromHex(articleID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	set := bson.M{}
	if title != nil {
		set["title"] = *title
	}
	if content != nil {
		set["content"] = *content
	}
	if summary != nil {
		set["summary"] = *summary
	}
	if image != nil {
		set["image"] = *image
	}
	if len(set) == 0 {
		return nil
	}
	set["updatedAt"] = time.Now()
	res, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update article %s: %w", articleID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	id, err := bson.ObjectIDFromHex(articleID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete article %s: %w", articleID, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *MongoArticleRepository) AddCommentRef(ctx context.Context, articleID, commentID string) error {
	aid, err := bson.ObjectIDFromHex(articleID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	cid, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return apperrors.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, aid, bson.M{"$push": bson.M{"comments": cid}})
	if err != nil {
		return fmt.Errorf("failed to attach comment %s to article %s: %w", commentID, articleID, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
