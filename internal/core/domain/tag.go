package domain

// Tag labels posts; posts and tags form a many-to-many association.
// Tags have no ownership semantics.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
