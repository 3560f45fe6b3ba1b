package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers are wired from.
type ServiceContainer struct {
	Auth    AuthSvcFacade
	Token   TokenSvcFacade
	User    UserSvcFacade
	Article ArticleSvcFacade
	Comment CommentSvcFacade
	Tag     TagSvcFacade
	Mail    MailSvcFacade
	Media   MediaSvcFacade
}
