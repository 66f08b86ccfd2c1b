// internal/domain/models/blog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogComment is one comment on a blog post. Comments are appended,
// never edited or removed.
type BlogComment struct {
	Email    string    `bson:"email" json:"email"`
	Name     string    `bson:"name,omitempty" json:"name,omitempty"`
	Comment  string    `bson:"comment" json:"comment"`
	PostedAt time.Time `bson:"postedAt" json:"postedAt"`
}

// Blog is a user-authored post with an ordered comment thread.
// Body and comments hold user HTML and are sanitized on write
// (system/sanitize).
type Blog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"` // author
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Body      string             `bson:"body" json:"body"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Comments  []BlogComment      `bson:"comments" json:"comments"`
}
