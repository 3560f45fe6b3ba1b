package services

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
	"github.com/median-app/median-backend/internal/dto"
)

// ArticleSvcFacade exposes article operations. Lookups populate referenced
// documents: listings carry author and tags, single-article reads additionally
// carry comments with their authors.
type ArticleSvcFacade interface {
	CreateArticle(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*domain.Article, error)
	GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	ListArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error)
	ListArticlesByTag(ctx context.Context, tagName string) ([]domain.Article, error)
	UpdateArticle(ctx context.Context, articleID, requestingUserID string, req dto.UpdateArticleRequest) error
	DeleteArticle(ctx context.Context, articleID, requestingUserID string) error
}

// TagSvcFacade exposes tag listing.
type TagSvcFacade interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
}
