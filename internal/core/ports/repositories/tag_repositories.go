package repositories

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
)

// TagRepository persists tags. Tag names carry a unique index; CreateTag
// returns apperrors.ErrDuplicate when the name already exists.
type TagRepository interface {
	CreateTag(ctx context.Context, name string) (*domain.Tag, error)
	FindTagByName(ctx context.Context, name string) (*domain.Tag, error)
	FindTags(ctx context.Context) ([]domain.Tag, error)
	FindTagsByIDs(ctx context.Context, tagIDs []string) ([]domain.Tag, error)
}
