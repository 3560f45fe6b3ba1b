package dto

import "github.com/median-app/median-backend/internal/core/domain"

// TagResponse is the API shape of a tag.
type TagResponse struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
}

// ToTagResponses converts a slice of domain.Tag.
func ToTagResponses(tags []domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, t := range tags {
		out[i] = TagResponse{TagID: t.TagID, Name: t.Name}
	}
	return out
}
