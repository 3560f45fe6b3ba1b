package dto

import (
	"time"

	"github.com/median-app/median-backend/internal/core/domain"
)

// CreateCommentRequest carries a new comment's content.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// UpdateCommentRequest carries edited comment content.
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CommentResponse is a comment with its optionally populated author.
type CommentResponse struct {
	CommentID string         `json:"commentID"`
	Content   string         `json:"content"`
	ArticleID string         `json:"articleID,omitempty"`
	Author    *AuthorPreview `json:"author,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// ToCommentResponse converts a domain.Comment.
func ToCommentResponse(c *domain.Comment) CommentResponse {
	resp := CommentResponse{
		CommentID: c.CommentID,
		Content:   c.Content,
		ArticleID: c.ArticleID,
		CreatedAt: c.CreatedAt,
	}
	if c.Author != nil {
		resp.Author = &AuthorPreview{
			UserID: c.Author.UserID,
			Name:   c.Author.Name,
			Avatar: c.Author.Avatar,
		}
	}
	return resp
}

// ToCommentResponses converts a slice of comments.
func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	out := make([]CommentResponse, len(comments))
	for i := range comments {
		out[i] = ToCommentResponse(&comments[i])
	}
	return out
}
