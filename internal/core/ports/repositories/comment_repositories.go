package repositories

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
)

// CommentRepository persists comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	FindCommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	FindCommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error)
	FindCommentsByIDs(ctx context.Context, commentIDs []string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, commentID string, content string) error
	DeleteComment(ctx context.Context, commentID string) error
}
