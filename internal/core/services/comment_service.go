package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
)

type commentService struct {
	commentRepo portsrepo.CommentRepository
	articleRepo portsrepo.ArticleRepository
	userRepo    portsrepo.UserRepository
}

// NewCommentService creates a new instance of commentService.
func NewCommentService(commentRepo portsrepo.CommentRepository, articleRepo portsrepo.ArticleRepository, userRepo portsrepo.UserRepository) portssvc.CommentSvcFacade {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) CreateComment(ctx context.Context, authorID, articleID, content string) (*domain.Comment, error) {
	if _, err := s.articleRepo.FindArticleByID(ctx, articleID); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.CreateComment(ctx, domain.Comment{
		Content:   content,
		ArticleID: articleID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}

	if err := s.articleRepo.AddCommentRef(ctx, articleID, comment.CommentID); err != nil {
		return nil, fmt.Errorf("failed to attach comment to article: %w", err)
	}
	return comment, nil
}

func (s *commentService) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	author, err := s.userRepo.FindUserByID(ctx, comment.AuthorID)
	if err == nil {
		comment.Author = author
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListCommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if _, err := s.articleRepo.FindArticleByID(ctx, articleID); err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindCommentsByArticle(ctx, articleID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		author, err := s.userRepo.FindUserByID(ctx, comments[i].AuthorID)
		if err == nil {
			comments[i].Author = author
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}
	return comments, nil
}

func (s *commentService) ListCommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error) {
	author, err := s.userRepo.FindUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.FindCommentsByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].Author = author
	}
	return comments, nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, requestingUserID, content string) error {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != requestingUserID {
		return fmt.Errorf("not the comment author: %w", apperrors.ErrForbidden)
	}
	return s.commentRepo.UpdateComment(ctx, commentID, content)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, requestingUserID string) error {
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != requestingUserID {
		return fmt.Errorf("not the comment author: %w", apperrors.ErrForbidden)
	}
	return s.commentRepo.DeleteComment(ctx, commentID)
}
