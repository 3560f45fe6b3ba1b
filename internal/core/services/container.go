package services

import (
	"log/slog"

	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/platform/config"
)

// NewServiceContainer wires all services against the repository provider.
// Mail and media are optional infrastructure: when their configuration is
// absent the container carries a nil facade and the dependent flows report
// the capability as unavailable.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, logger *slog.Logger) (*portssvc.ServiceContainer, error) {
	tokenSvc := NewTokenService(cfg)

	mailSvc, err := NewMailService(cfg)
	if err != nil {
		return nil, err
	}

	var mediaSvc portssvc.MediaSvcFacade
	if cfg.CloudinaryURL != "" {
		mediaSvc, err = NewMediaService(cfg.CloudinaryURL)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Warn("No CLOUDINARY_URL configured; article image uploads disabled")
	}

	return &portssvc.ServiceContainer{
		Auth:    NewAuthService(cfg, repos.User, tokenSvc, mailSvc),
		Token:   tokenSvc,
		User:    NewUserService(repos.User),
		Article: NewArticleService(repos.Article, repos.Comment, repos.Tag, repos.User, mediaSvc),
		Comment: NewCommentService(repos.Comment, repos.Article, repos.User),
		Tag:     NewTagService(repos.Tag),
		Mail:    mailSvc,
		Media:   mediaSvc,
	}, nil
}
