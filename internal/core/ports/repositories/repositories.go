package repositories

// RepositoryProvider bundles all repository implementations so the service
// layer can be wired from a single value.
type RepositoryProvider struct {
	User    UserRepository
	Article ArticleRepository
	Comment CommentRepository
	Tag     TagRepository
}
