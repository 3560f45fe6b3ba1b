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

// commentHandler handles comment related requests.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(commentService portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{commentService: commentService}
}

// registerCommentRoutes sets up the routes for comments. Reads are public,
// writes require a session.
func registerCommentRoutes(rg *gin.RouterGroup, svc *portssvc.ServiceContainer) {
	h := newCommentHandler(svc.Comment)
	authRequired := middleware.AuthMiddleware(svc.Token)

	comments := rg.Group("/comments")
	{
		comments.GET("/:commentID", h.getComment)
		comments.GET("/article/:articleID", h.listByArticle)
		comments.GET("/author/:userID", authRequired, h.listByAuthor)
		comments.POST("/article/:articleID", authRequired, h.createComment)
		comments.PUT("/:commentID", authRequired, h.updateComment)
		comments.DELETE("/:commentID", authRequired, h.deleteComment)
	}
}

// createComment godoc
// @Summary Comment on an article
// @Tags comments
// @Accept json
// @Produce json
// @Param articleID path string true "Article ID"
// @Param comment body dto.CreateCommentRequest true "Comment content"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/article/{articleID} [post]
func (h *commentHandler) createComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}
	articleID := c.Param("articleID")

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid comment data"})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), userID, articleID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid comment data"})
		default:
			logger.Error("Failed to create comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// getComment godoc
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.CommentResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/{commentID} [get]
func (h *commentHandler) getComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	commentID := c.Param("commentID")

	comment, err := h.commentService.GetCommentByID(c.Request.Context(), commentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Comment not found"})
			return
		}
		logger.Error("Failed to fetch comment", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch comment"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// listByArticle godoc
// @Summary List comments on an article
// @Tags comments
// @Produce json
// @Param articleID path string true "Article ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} ErrorResponse
// @Router /comments/article/{articleID} [get]
func (h *commentHandler) listByArticle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	articleID := c.Param("articleID")

	comments, err := h.commentService.ListCommentsByArticle(c.Request.Context(), articleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Article not found"})
			return
		}
		logger.Error("Failed to list comments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// listByAuthor godoc
// @Summary List comments written by a user
// @Tags comments
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/author/{userID} [get]
func (h *commentHandler) listByAuthor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	authorID := c.Param("userID")

	comments, err := h.commentService.ListCommentsByAuthor(c.Request.Context(), authorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "User not found"})
			return
		}
		logger.Error("Failed to list comments", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// updateComment godoc
// @Summary Edit a comment
// @Description Only the comment's author may edit it.
// @Tags comments
// @Accept json
// @Produce json
// @Param commentID path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "New content"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}
	commentID := c.Param("commentID")

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid comment data"})
		return
	}

	if err := h.commentService.UpdateComment(c.Request.Context(), commentID, userID, req.Content); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Comment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "You are not the author of this comment"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid comment data"})
		default:
			logger.Error("Failed to update comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update comment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment updated successfully"})
}

// deleteComment godoc
// @Summary Delete a comment
// @Description Only the comment's author may delete it.
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Unauthorized"})
		return
	}
	commentID := c.Param("commentID")

	if err := h.commentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Comment not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Message: "You are not the author of this comment"})
		default:
			logger.Error("Failed to delete comment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to delete comment"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted successfully"})
}
