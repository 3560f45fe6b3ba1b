package repositories

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
)

// ArticleRepository persists articles. Listings are sorted newest first.
type ArticleRepository interface {
	CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error)
	FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	FindArticles(ctx context.Context) ([]domain.Article, error)
	FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
	FindArticlesByTag(ctx context.Context, tagID string) ([]domain.Article, error)

	UpdateArticle(ctx context.Context, articleID string, title, content, summary, image *string) error
	DeleteArticle(ctx context.Context, articleID string) error

	// AddCommentRef appends a comment id to the article's comments array.
	AddCommentRef(ctx context.Context, articleID, commentID string) error
}
