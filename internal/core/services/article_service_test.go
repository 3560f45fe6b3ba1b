package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/median-app/median-backend/internal/apperrors"
	"github.com/median-app/median-backend/internal/core/domain"
	portsrepo "github.com/median-app/median-backend/internal/core/ports/repositories"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/core/services"
	"github.com/median-app/median-backend/internal/dto"
)

// --- Mock ArticleRepository ---
type MockArticleRepository struct {
	mock.Mock
	CreateArticleFn        func(ctx context.Context, article domain.Article) (*domain.Article, error)
	FindArticleByIDFn      func(ctx context.Context, articleID string) (*domain.Article, error)
	FindArticlesFn         func(ctx context.Context) ([]domain.Article, error)
	FindArticlesByAuthorFn func(ctx context.Context, authorID string) ([]domain.Article, error)
	FindArticlesByTagFn    func(ctx context.Context, tagID string) ([]domain.Article, error)
	UpdateArticleFn        func(ctx context.Context, articleID string, title, content, summary, image *string) error
	DeleteArticleFn        func(ctx context.Context, articleID string) error
	AddCommentRefFn        func(ctx context.Context, articleID, commentID string) error
}

func (m *MockArticleRepository) CreateArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	if m.CreateArticleFn != nil {
		return m.CreateArticleFn(ctx, article)
	}
	args := m.Called(ctx, article)
	var created *domain.Article
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Article)
	}
	return created, args.Error(1)
}

func (m *MockArticleRepository) FindArticleByID(ctx context.Context, articleID string) (*domain.Article, error) {
	if m.FindArticleByIDFn != nil {
		return m.FindArticleByIDFn(ctx, articleID)
	}
	args := m.Called(ctx, articleID)
	var article *domain.Article
	if args.Get(0) != nil {
		article = args.Get(0).(*domain.Article)
	}
	return article, args.Error(1)
}

func (m *MockArticleRepository) FindArticles(ctx context.Context) ([]domain.Article, error) {
	if m.FindArticlesFn != nil {
		return m.FindArticlesFn(ctx)
	}
	args := m.Called(ctx)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) FindArticlesByAuthor(ctx context.Context, authorID string) ([]domain.Article, error) {
	if m.FindArticlesByAuthorFn != nil {
		return m.FindArticlesByAuthorFn(ctx, authorID)
	}
	args := m.Called(ctx, authorID)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) FindArticlesByTag(ctx context.Context, tagID string) ([]domain.Article, error) {
	if m.FindArticlesByTagFn != nil {
		return m.FindArticlesByTagFn(ctx, tagID)
	}
	args := m.Called(ctx, tagID)
	var articles []domain.Article
	if args.Get(0) != nil {
		articles = args.Get(0).([]domain.Article)
	}
	return articles, args.Error(1)
}

func (m *MockArticleRepository) UpdateArticle(ctx context.Context, articleID string, title, content, summary, image *string) error {
	if m.UpdateArticleFn != nil {
		return m.UpdateArticleFn(ctx, articleID, title, content, summary, image)
	}
	args := m.Called(ctx, articleID, title, content, summary, image)
	return args.Error(0)
}

func (m *MockArticleRepository) DeleteArticle(ctx context.Context, articleID string) error {
	if m.DeleteArticleFn != nil {
		return m.DeleteArticleFn(ctx, articleID)
	}
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

func (m *MockArticleRepository) AddCommentRef(ctx context.Context, articleID, commentID string) error {
	if m.AddCommentRefFn != nil {
		return m.AddCommentRefFn(ctx, articleID, commentID)
	}
	args := m.Called(ctx, articleID, commentID)
	return args.Error(0)
}

var _ portsrepo.ArticleRepository = (*MockArticleRepository)(nil)

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
	CreateCommentFn         func(ctx context.Context, comment domain.Comment) (*domain.Comment, error)
	FindCommentByIDFn       func(ctx context.Context, commentID string) (*domain.Comment, error)
	FindCommentsByArticleFn func(ctx context.Context, articleID string) ([]domain.Comment, error)
	FindCommentsByAuthorFn  func(ctx context.Context, authorID string) ([]domain.Comment, error)
	FindCommentsByIDsFn     func(ctx context.Context, commentIDs []string) ([]domain.Comment, error)
	UpdateCommentFn         func(ctx context.Context, commentID string, content string) error
	DeleteCommentFn         func(ctx context.Context, commentID string) error
}

func (m *MockCommentRepository) CreateComment(ctx context.Context, comment domain.Comment) (*domain.Comment, error) {
	if m.CreateCommentFn != nil {
		return m.CreateCommentFn(ctx, comment)
	}
	args := m.Called(ctx, comment)
	var created *domain.Comment
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.Comment)
	}
	return created, args.Error(1)
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	if m.FindCommentByIDFn != nil {
		return m.FindCommentByIDFn(ctx, commentID)
	}
	args := m.Called(ctx, commentID)
	var comment *domain.Comment
	if args.Get(0) != nil {
		comment = args.Get(0).(*domain.Comment)
	}
	return comment, args.Error(1)
}

func (m *MockCommentRepository) FindCommentsByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if m.FindCommentsByArticleFn != nil {
		return m.FindCommentsByArticleFn(ctx, articleID)
	}
	args := m.Called(ctx, articleID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) FindCommentsByAuthor(ctx context.Context, authorID string) ([]domain.Comment, error) {
	if m.FindCommentsByAuthorFn != nil {
		return m.FindCommentsByAuthorFn(ctx, authorID)
	}
	args := m.Called(ctx, authorID)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) FindCommentsByIDs(ctx context.Context, commentIDs []string) ([]domain.Comment, error) {
	if m.FindCommentsByIDsFn != nil {
		return m.FindCommentsByIDsFn(ctx, commentIDs)
	}
	args := m.Called(ctx, commentIDs)
	var comments []domain.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.Comment)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, commentID string, content string) error {
	if m.UpdateCommentFn != nil {
		return m.UpdateCommentFn(ctx, commentID, content)
	}
	args := m.Called(ctx, commentID, content)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	if m.DeleteCommentFn != nil {
		return m.DeleteCommentFn(ctx, commentID)
	}
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

var _ portsrepo.CommentRepository = (*MockCommentRepository)(nil)

// --- Mock TagRepository ---
type MockTagRepository struct {
	mock.Mock
	CreateTagFn     func(ctx context.Context, name string) (*domain.Tag, error)
	FindTagByNameFn func(ctx context.Context, name string) (*domain.Tag, error)
	FindTagsFn      func(ctx context.Context) ([]domain.Tag, error)
	FindTagsByIDsFn func(ctx context.Context, tagIDs []string) ([]domain.Tag, error)
}

func (m *MockTagRepository) CreateTag(ctx context.Context, name string) (*domain.Tag, error) {
	if m.CreateTagFn != nil {
		return m.CreateTagFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindTagByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.FindTagByNameFn != nil {
		return m.FindTagByNameFn(ctx, name)
	}
	args := m.Called(ctx, name)
	var tag *domain.Tag
	if args.Get(0) != nil {
		tag = args.Get(0).(*domain.Tag)
	}
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindTags(ctx context.Context) ([]domain.Tag, error) {
	if m.FindTagsFn != nil {
		return m.FindTagsFn(ctx)
	}
	args := m.Called(ctx)
	var tags []domain.Tag
	if args.Get(0) != nil {
		tags = args.Get(0).([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *MockTagRepository) FindTagsByIDs(ctx context.Context, tagIDs []string) ([]domain.Tag, error) {
	if m.FindTagsByIDsFn != nil {
		return m.FindTagsByIDsFn(ctx, tagIDs)
	}
	args := m.Called(ctx, tagIDs)
	var tags []domain.Tag
	if args.Get(0) != nil {
		tags = args.Get(0).([]domain.Tag)
	}
	return tags, args.Error(1)
}

var _ portsrepo.TagRepository = (*MockTagRepository)(nil)

// --- Mock MediaService ---
type MockMediaService struct {
	mock.Mock
	UploadImageFn func(ctx context.Context, base64Image string) (string, error)
}

func (m *MockMediaService) UploadImage(ctx context.Context, base64Image string) (string, error) {
	if m.UploadImageFn != nil {
		return m.UploadImageFn(ctx, base64Image)
	}
	args := m.Called(ctx, base64Image)
	return args.String(0), args.Error(1)
}

var _ portssvc.MediaSvcFacade = (*MockMediaService)(nil)

// --- Test Suite ---
type ArticleServiceTestSuite struct {
	suite.Suite
	mockArticleRepo *MockArticleRepository
	mockCommentRepo *MockCommentRepository
	mockTagRepo     *MockTagRepository
	mockUserRepo    *MockUserRepository
	mockMediaSvc    *MockMediaService
	service         portssvc.ArticleSvcFacade
}

func (suite *ArticleServiceTestSuite) SetupTest() {
	suite.mockArticleRepo = new(MockArticleRepository)
	suite.mockCommentRepo = new(MockCommentRepository)
	suite.mockTagRepo = new(MockTagRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockMediaSvc = new(MockMediaService)
	suite.service = services.NewArticleService(
		suite.mockArticleRepo,
		suite.mockCommentRepo,
		suite.mockTagRepo,
		suite.mockUserRepo,
		suite.mockMediaSvc,
	)
}

func (suite *ArticleServiceTestSuite) TestCreateArticle_CreatesMissingTags() {
	ctx := context.Background()

	// "go" exists, "testing" must be created on first use.
	suite.mockTagRepo.FindTagByNameFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		if name == "go" {
			return &domain.Tag{TagID: "tag-go", Name: "go"}, nil
		}
		return nil, apperrors.ErrNotFound
	}
	suite.mockTagRepo.CreateTagFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		suite.Equal("testing", name)
		return &domain.Tag{TagID: "tag-testing", Name: name}, nil
	}
	suite.mockArticleRepo.CreateArticleFn = func(ctx context.Context, article domain.Article) (*domain.Article, error) {
		suite.Equal("user-1", article.AuthorID)
		suite.Equal([]string{"tag-go", "tag-testing"}, article.TagIDs)
		article.ArticleID = "article-1"
		return &article, nil
	}

	article, err := suite.service.CreateArticle(ctx, "user-1", dto.CreateArticleRequest{
		Title:   "On Testing",
		Content: "Body",
		Summary: "Short",
		Tags:    []string{"go", "testing"},
	})

	suite.Require().NoError(err)
	suite.Equal("article-1", article.ArticleID)
}

func (suite *ArticleServiceTestSuite) TestCreateArticle_TagCreationRace() {
	ctx := context.Background()

	// The tag does not exist on lookup, creation loses to a concurrent
	// writer, and the second lookup resolves it.
	lookups := 0
	suite.mockTagRepo.FindTagByNameFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		lookups++
		if lookups == 1 {
			return nil, apperrors.ErrNotFound
		}
		return &domain.Tag{TagID: "tag-raced", Name: name}, nil
	}
	suite.mockTagRepo.CreateTagFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		return nil, apperrors.ErrDuplicate
	}
	suite.mockArticleRepo.CreateArticleFn = func(ctx context.Context, article domain.Article) (*domain.Article, error) {
		suite.Equal([]string{"tag-raced"}, article.TagIDs)
		article.ArticleID = "article-1"
		return &article, nil
	}

	article, err := suite.service.CreateArticle(ctx, "user-1", dto.CreateArticleRequest{
		Title: "T", Content: "C", Summary: "S", Tags: []string{"raced"},
	})

	suite.Require().NoError(err)
	suite.NotNil(article)
}

func (suite *ArticleServiceTestSuite) TestCreateArticle_UploadsImage() {
	ctx := context.Background()
	suite.mockMediaSvc.UploadImageFn = func(ctx context.Context, base64Image string) (string, error) {
		return "https://cdn.example.com/img.png", nil
	}
	suite.mockArticleRepo.CreateArticleFn = func(ctx context.Context, article domain.Article) (*domain.Article, error) {
		suite.Equal("https://cdn.example.com/img.png", article.Image)
		article.ArticleID = "article-1"
		return &article, nil
	}

	article, err := suite.service.CreateArticle(ctx, "user-1", dto.CreateArticleRequest{
		Title: "T", Content: "C", Summary: "S", Image: "data:image/png;base64,AAAA",
	})

	suite.Require().NoError(err)
	suite.Equal("https://cdn.example.com/img.png", article.Image)
}

func (suite *ArticleServiceTestSuite) TestCreateArticle_ImageWithoutMediaService() {
	ctx := context.Background()
	service := services.NewArticleService(
		suite.mockArticleRepo,
		suite.mockCommentRepo,
		suite.mockTagRepo,
		suite.mockUserRepo,
		nil,
	)

	article, err := service.CreateArticle(ctx, "user-1", dto.CreateArticleRequest{
		Title: "T", Content: "C", Summary: "S", Image: "data:image/png;base64,AAAA",
	})

	suite.Require().Error(err)
	suite.Nil(article)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ArticleServiceTestSuite) TestGetArticleByID_PopulatesReferences() {
	ctx := context.Background()
	suite.mockArticleRepo.FindArticleByIDFn = func(ctx context.Context, articleID string) (*domain.Article, error) {
		return &domain.Article{
			ArticleID:  "article-1",
			AuthorID:   "user-1",
			TagIDs:     []string{"tag-go"},
			CommentIDs: []string{"comment-1"},
			CreatedAt:  time.Now(),
		}, nil
	}
	suite.mockUserRepo.FindUserByIDFn = func(ctx context.Context, userID string) (*domain.User, error) {
		return &domain.User{UserID: userID, Name: "Author " + userID}, nil
	}
	suite.mockTagRepo.FindTagsByIDsFn = func(ctx context.Context, tagIDs []string) ([]domain.Tag, error) {
		return []domain.Tag{{TagID: "tag-go", Name: "go"}}, nil
	}
	suite.mockCommentRepo.FindCommentsByIDsFn = func(ctx context.Context, commentIDs []string) ([]domain.Comment, error) {
		return []domain.Comment{{CommentID: "comment-1", AuthorID: "user-2", Content: "Nice"}}, nil
	}

	article, err := suite.service.GetArticleByID(ctx, "article-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(article.Author)
	suite.Equal("user-1", article.Author.UserID)
	suite.Require().Len(article.Tags, 1)
	suite.Equal("go", article.Tags[0].Name)
	suite.Require().Len(article.Comments, 1)
	suite.Require().NotNil(article.Comments[0].Author)
	suite.Equal("user-2", article.Comments[0].Author.UserID)
}

func (suite *ArticleServiceTestSuite) TestGetArticleByID_NotFound() {
	ctx := context.Background()
	suite.mockArticleRepo.FindArticleByIDFn = func(ctx context.Context, articleID string) (*domain.Article, error) {
		return nil, apperrors.ErrNotFound
	}

	article, err := suite.service.GetArticleByID(ctx, "missing")

	suite.Require().Error(err)
	suite.Nil(article)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ArticleServiceTestSuite) TestListArticlesByTag_UnknownTag() {
	ctx := context.Background()
	suite.mockTagRepo.FindTagByNameFn = func(ctx context.Context, name string) (*domain.Tag, error) {
		return nil, apperrors.ErrNotFound
	}

	articles, err := suite.service.ListArticlesByTag(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(articles)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ArticleServiceTestSuite) TestUpdateArticle_NotAuthor() {
	ctx := context.Background()
	suite.mockArticleRepo.FindArticleByIDFn = func(ctx context.Context, articleID string) (*domain.Article, error) {
		return &domain.Article{ArticleID: articleID, AuthorID: "user-1"}, nil
	}

	newTitle := "Hijacked"
	err := suite.service.UpdateArticle(ctx, "article-1", "user-2", dto.UpdateArticleRequest{Title: &newTitle})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ArticleServiceTestSuite) TestUpdateArticle_Success() {
	ctx := context.Background()
	suite.mockArticleRepo.FindArticleByIDFn = func(ctx context.Context, articleID string) (*domain.Article, error) {
		return &domain.Article{ArticleID: articleID, AuthorID: "user-1"}, nil
	}
	newTitle := "Revised"
	updated := false
	suite.mockArticleRepo.UpdateArticleFn = func(ctx context.Context, articleID string, title, content, summary, image *string) error {
		suite.Require().NotNil(title)
		suite.Equal(newTitle, *title)
		suite.Nil(content)
		updated = true
		return nil
	}

	err := suite.service.UpdateArticle(ctx, "article-1", "user-1", dto.UpdateArticleRequest{Title: &newTitle})

	suite.Require().NoError(err)
	suite.True(updated)
}

func (suite *ArticleServiceTestSuite) TestDeleteArticle_NotAuthor() {
	ctx := context.Background()
	suite.mockArticleRepo.FindArticleByIDFn = func(ctx context.Context, articleID string) (*domain.Article, error) {
		return &domain.Article{ArticleID: articleID, AuthorID: "user-1"}, nil
	}

	err := suite.service.DeleteArticle(ctx, "article-1", "user-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestArticleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceTestSuite))
}
