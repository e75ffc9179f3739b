package discussion

import "time"

// DefaultAuthorName is shown when a post arrives without a display name.
const DefaultAuthorName = "Anonymous"

// Post is a discussion board message.
type Post struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Replies   []Reply   `json:"replies"`
}

// Reply is a response to a post.
type Reply struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostInput is a new post.
type PostInput struct {
	Email   string
	Name    string
	Message string
	Image   string
}
