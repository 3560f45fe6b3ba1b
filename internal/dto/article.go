package dto

import (
	"time"

	"github.com/median-app/median-backend/internal/core/domain"
)

// CreateArticleRequest carries a new article. Image, when present, is a
// base64 data URI handed to the media service before persisting.
type CreateArticleRequest struct {
	Title   string   `json:"title" binding:"required"`
	Content string   `json:"content" binding:"required"`
	Summary string   `json:"summary" binding:"required"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}

// UpdateArticleRequest defines fields allowed on edit. Pointers differentiate
// omitted fields from zero-value fields.
type UpdateArticleRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Summary *string `json:"summary"`
	Image   *string `json:"image"`
}

// AuthorPreview is the slim author shape embedded in article responses.
type AuthorPreview struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// ArticleResponse is an article with its populated references.
type ArticleResponse struct {
	ArticleID string            `json:"articleID"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Summary   string            `json:"summary"`
	Image     string            `json:"image,omitempty"`
	Author    *AuthorPreview    `json:"author,omitempty"`
	Tags      []TagResponse     `json:"tags,omitempty"`
	Comments  []CommentResponse `json:"comments,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// ToArticleResponse converts a domain.Article, carrying over whichever
// references the service populated.
func ToArticleResponse(a *domain.Article) ArticleResponse {
	resp := ArticleResponse{
		ArticleID: a.ArticleID,
		Title:     a.Title,
		Content:   a.Content,
		Summary:   a.Summary,
		Image:     a.Image,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Author != nil {
		resp.Author = &AuthorPreview{
			UserID: a.Author.UserID,
			Name:   a.Author.Name,
			Email:  a.Author.Email,
			Avatar: a.Author.Avatar,
		}
	}
	if len(a.Tags) > 0 {
		resp.Tags = ToTagResponses(a.Tags)
	}
	if len(a.Comments) > 0 {
		resp.Comments = make([]CommentResponse, len(a.Comments))
		for i := range a.Comments {
			resp.Comments[i] = ToCommentResponse(&a.Comments[i])
		}
	}
	return resp
}

// ToArticleResponses converts a slice of articles.
func ToArticleResponses(articles []domain.Article) []ArticleResponse {
	out := make([]ArticleResponse, len(articles))
	for i := range articles {
		out[i] = ToArticleResponse(&articles[i])
	}
	return out
}
