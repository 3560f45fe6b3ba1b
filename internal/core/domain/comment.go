package domain

import "time"

// Comment is a reader's response attached to an article.
type Comment struct {
	CommentID string    `json:"commentID"`
	Content   string    `json:"content"`
	ArticleID string    `json:"articleID"`
	AuthorID  string    `json:"authorID"`
	CreatedAt time.Time `json:"createdAt"`

	// Author is populated on single-comment lookups.
	Author *User `json:"author,omitempty"`
}
