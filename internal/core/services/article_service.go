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
	"github.com/median-app/median-backend/internal/dto"
)

type articleService struct {
	articleRepo portsrepo.ArticleRepository
	commentRepo portsrepo.CommentRepository
	tagRepo     portsrepo.TagRepository
	userRepo    portsrepo.UserRepository
	mediaSvc    portssvc.MediaSvcFacade
}

// NewArticleService creates a new instance of articleService. mediaSvc may be
// nil when no image store is configured; article creation then rejects image
// payloads.
func NewArticleService(
	articleRepo portsrepo.ArticleRepository,
	commentRepo portsrepo.CommentRepository,
	tagRepo portsrepo.TagRepository,
	userRepo portsrepo.UserRepository,
	mediaSvc portssvc.MediaSvcFacade,
) portssvc.ArticleSvcFacade {
	return &articleService{
		articleRepo: articleRepo,
		commentRepo: commentRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		mediaSvc:    mediaSvc,
	}
}

// ensureTags resolves tag names to ids, creating missing tags on first use.
func (s *articleService) ensureTags(ctx context.Context, names []string) ([]string, error) {
	tagIDs := make([]string, 0, len(names))
	for _, name := range names {
		tag, err := s.tagRepo.FindTagByName(ctx, name)
		if errors.Is(err, apperrors.ErrNotFound) {
			tag, err = s.tagRepo.CreateTag(ctx, name)
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Concurrent creation of the same tag; the index won, fetch it.
				tag, err = s.tagRepo.FindTagByName(ctx, name)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tag %q: %w", name, err)
		}
		tagIDs = append(tagIDs, tag.TagID)
	}
	return tagIDs, nil
}

func (s *articleService) CreateArticle(ctx context.Context, authorID string, req dto.CreateArticleRequest) (*domain.Article, error) {
	imageURL := ""
	if req.Image != "" {
		if s.mediaSvc == nil {
			return nil, fmt.Errorf("image uploads are not configured: %w", apperrors.ErrValidation)
		}
		url, err := s.mediaSvc.UploadImage(ctx, req.Image)
		if err != nil {
			return nil, fmt.Errorf("image upload failed: %w", err)
		}
		imageURL = url
	}

	tagIDs, err := s.ensureTags(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return s.articleRepo.CreateArticle(ctx, domain.Article{
		Title:     req.Title,
		Content:   req.Content,
		Summary:   req.Summary,
		Image:     imageURL,
		AuthorID:  authorID,
		TagIDs:    tagIDs,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

// populateAuthorsAndTags fills each article's author and tags in place.
func (s *articleService) populateAuthorsAndTags(ctx context.Context, articles []domain.Article) error {
	for i := range articles {
		author, err := s.userRepo.FindUserByID(ctx, articles[i].AuthorID)
		if err == nil {
			articles[i].Author = author
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		if len(articles[i].TagIDs) > 0 {
			tags, err := s.tagRepo.FindTagsByIDs(ctx, articles[i].TagIDs)
			if err != nil {
				return err
			}
			articles[i].Tags = tags
		}
	}
	return nil
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	single := []domain.Article{*article}
	if err := s.populateAuthorsAndTags(ctx, single); err != nil {
		return nil, err
	}
	populated := single[0]

	if len(populated.CommentIDs) > 0 {
		comments, err := s.commentRepo.FindCommentsByIDs(ctx, populated.CommentIDs)
		if err != nil {
			return nil, err
		}
		for i := range comments {
			commentAuthor, err := s.userRepo.FindUserByID(ctx, comments[i].AuthorID)
			if err == nil {
				comments[i].Author = commentAuthor
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
		}
		populated.Comments = comments
	}

	return &populated, nil
}

func (s *articleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articleRepo.FindArticles(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.populateAuthorsAndTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) ListArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	articles, err := s.articleRepo.FindArticlesByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if err := s.populateAuthorsAndTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) ListArticlesByTag(ctx context.Context, tagName string) ([]domain.Article, error) {
	tag, err := s.tagRepo.FindTagByName(ctx, tagName)
	if err != nil {
		return nil, err
	}
	articles, err := s.articleRepo.FindArticlesByTag(ctx, tag.TagID)
	if err != nil {
		return nil, err
	}
	if err := s.populateAuthorsAndTags(ctx, articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) UpdateArticle(ctx context.Context, articleID, requestingUserID string, req dto.UpdateArticleRequest) error {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorID != requestingUserID {
		return fmt.Errorf("not the article author: %w", apperrors.ErrForbidden)
	}
	return s.articleRepo.UpdateArticle(ctx, articleID, req.Title, req.Content, req.Summary, req.Image)
}

func (s *articleService) DeleteArticle(ctx context.Context, articleID, requestingUserID string) error {
	article, err := s.articleRepo.FindArticleByID(ctx, articleID)
	if err != nil {
		return err
	}
	if article.AuthorID != requestingUserID {
		return fmt.Errorf("not the article author: %w", apperrors.ErrForbidden)
	}
	return s.articleRepo.DeleteArticle(ctx, articleID)
}
