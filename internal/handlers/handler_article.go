package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/median-app/median-backend/internal/apperrors"
	portssvc "github.com/median-app/median-backend/internal/core/ports/services"
	"github.com/median-app/median-backend/internal/dto"
	"github.com/median-app/median-backend/internal/middleware"
)

// articleHandler handles article related requests.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

func newArticleHandler(articleService portssvc.ArticleSvcFacade) *articleHandler {
	return &articleHandler{articleService: articleService}
}

// registerArticleRoutes sets up the routes for articles. Reads are public,
// writes require a session.
func registerArticleRoutes(rg *gin.RouterGroup, svc *portssvc.ServiceContainer) {
	h := newArticleHandler(svc.Article)
	authRequired := middleware.AuthMiddleware(svc.Token)

	articles := rg.Group("/articles")
	{
		articles.GET("", h.listArticles)
		articles.GET("/:articleID", h.getArticle)
		articles.GET("/author/:userID", h.listByAuthor)
		articles.GET("/tag/:tagName", h.listByTag)
		articles.POST("", authRequired, h.createArticle)
		articles.PUT("/:articleID", authRequired, h.updateArticle)
		articles.DELETE("/:articleID", authRequired, h.deleteArticle)
	}
}

// createArticle godoc
// @Summary Create an article
// @Description Publishes a new article owned by the authenticated user. Tag
// @Description names that do not yet exist are created on the fly.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article data"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid article data"})
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid article data"})
			return
		}
		logger.Error("Failed to create article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create article"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// getArticle godoc
// @Summary Get an article
// @Description Returns one article with its author, tags and comments.
// @Tags articles
// @Produce json
// @Param articleID path string true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/{articleID} [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	article, err := h.articleService.GetArticleByID(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
			return
		}
		logger.Error("Failed to fetch article", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch article"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// listArticles godoc
// @Summary List all articles
// @Description Returns all articles, newest first, with authors and tags.
// @Tags articles
// @Produce json
// @Success 200 {array} dto.ArticleResponse
// @Router /articles [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	articles, err := h.articleService.ListArticles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list articles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// listByAuthor godoc
// @Summary List articles by author
// @Tags articles
// @Produce json
// @Param userID path string true "Author user ID"
// @Success 200 {array} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/author/{userID} [get]
func (h *articleHandler) listByAuthor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	authorID := c.Param("userID")

	articles, err := h.articleService.ListArticlesByAuthor(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to list articles by author", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// listByTag godoc
// @Summary List articles by tag
// @Tags articles
// @Produce json
// @Param tagName path string true "Tag name"
// @Success 200 {array} dto.ArticleResponse
// @Failure 404 {object} ErrorResponse
// @Router /articles/tag/{tagName} [get]
func (h *articleHandler) listByTag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tagName := c.Param("tagName")

	articles, err := h.articleService.ListArticlesByTag(c.Request.Context(), tagName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Tag not found"})
			return
		}
		logger.Error("Failed to list articles by tag", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArticleResponses(articles))
}

// updateArticle godoc
// @Summary Update an article
// @Description Edits an article. Only the article's author may edit it.
// @Tags articles
// @Accept json
// @Produce json
// @Param articleID path string true "Article ID"
// @Param article body dto.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleID} [put]
func (h *articleHandler) updateArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}
	articleID := c.Param("articleID")

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid article data"})
		return
	}

	if err := h.articleService.UpdateArticle(c.Request.Context(), articleID, userID, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "You are not the author of this article"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid article data"})
		default:
			logger.Error("Failed to update article", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update article"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Article updated successfully"})
}

// deleteArticle godoc
// @Summary Delete an article
// @Description Deletes an article. Only the author may delete it. Comments
// @Description on the article are left in place.
// @Tags articles
// @Produce json
// @Param articleID path string true "Article ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /articles/{articleID} [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}
	articleID := c.Param("articleID")

	if err := h.articleService.DeleteArticle(c.Request.Context(), articleID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "You are not the author of this article"})
		default:
			logger.Error("Failed to delete article", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to delete article"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Article deleted successfully"})
}
