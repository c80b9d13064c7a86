package models

import "time"

// Notification types
const (
	NotificationTypeComment = "Comment"
	NotificationTypeFollow  = "Follow"
)

// Notification represents a user notification (PostgreSQL).
// It keeps no reference to the record that triggered it, so deleting a
// comment does not retract its notification.
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:64;index"` // recipient UID
	Type      string    `json:"type" gorm:"size:30;index"`
	Content   string    `json:"content"`
	SenderID  string    `json:"sender_id" gorm:"size:64;index"`
	IsRead    bool      `json:"is_read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}
