package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post, stored in MongoDB.
// Likes holds the UIDs of users who liked the comment; it is a set,
// duplicates are never written.
type Comment struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	PostID       string             `json:"post_id" bson:"post_id"`
	UserID       string             `json:"user_id" bson:"user_id"`
	ProfileImage string             `json:"profile_image" bson:"profile_image"` // author's avatar at creation time
	CommentText  string             `json:"comment_text" bson:"comment_text"`
	Likes        []string           `json:"likes" bson:"likes"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	CommentText string `json:"comment_text" validate:"required,min=1,max=500"`
}

// CommentLikeResult is returned by the like toggle endpoint
type CommentLikeResult struct {
	ID         primitive.ObjectID `json:"_id"`
	LikesCount int                `json:"likes_count"`
	IsLiked    bool               `json:"isLiked"`
}
