package domain

// Tag is a topic label. Tags are created on first use and shared by name.
type Tag struct {
	TagID string `json:"tagID"`
	Name  string `json:"name"`
}
