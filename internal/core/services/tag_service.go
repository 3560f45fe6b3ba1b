package services

import (
	"context"

	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
)

type tagService struct {
	tagRepo portsrepo.TagRepository
}

// NewTagService creates a new instance of tagService.
func NewTagService(tagRepo portsrepo.TagRepository) portssvc.TagSvcFacade {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepo.FindTags(ctx)
}
