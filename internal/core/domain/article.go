package domain

import "time"

// Article is a published piece of writing.
type Article struct {
	ArticleID  string    `json:"articleID"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Summary    string    `json:"summary"`
	Image      string    `json:"image,omitempty"`
	AuthorID   string    `json:"authorID"`
	TagIDs     []string  `json:"-"`
	CommentIDs []string  `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Populated references. Nil when the lookup did not request them.
	Author   *User     `json:"author,omitempty"`
	Tags     []Tag     `json:"tags,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}
