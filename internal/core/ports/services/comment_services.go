package services

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
)

// CommentSvcFacade exposes comment operations. Edits and deletes are
// restricted to the comment's author.
type CommentSvcFacade interface {
	CreateComment(ctx context.Context, authorID, articleID, content string) (*domain.Comment, error)
	GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListCommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
	ListCommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error)
	UpdateComment(ctx context.Context, commentID, requestingUserID, content string) error
	DeleteComment(ctx context.Context, commentID, requestingUserID string) error
}
