package domain

import "time"

// Post is the core aggregate root. AuthorID is always set for posts created
// through the service; only legacy rows imported from older data may lack it.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorID       string    `json:"author_id,omitempty"`
	AuthorUsername string    `json:"author_username,omitempty"`
	Tags           []Tag     `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasAuthor reports whether the post has a known author.
func (p *Post) HasAuthor() bool {
	return p != nil && p.AuthorID != ""
}

// IsAuthoredBy reports whether the given user owns the post. Posts without an
// author belong to nobody, not even an otherwise plausible caller.
func (p *Post) IsAuthoredBy(u *User) bool {
	return p.HasAuthor() && u != nil && p.AuthorID == u.ID
}
