package models

import "time"

// Follow represents a follow relationship. UserID is the followee;
// the JSON shape matches what feed clients consume from the
// /follow/:userId/following endpoint.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID string    `json:"follower_id" gorm:"size:64;index;uniqueIndex:idx_follower_followee"`
	UserID     string    `json:"user_id" gorm:"size:64;index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time `json:"created_at"`
}
