package repositories

import "errors"

// Sentinel errors shared by the repository implementations so callers can
// translate "missing parent" conditions before any mutation happens.
var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrFollowNotFound  = errors.New("follow relationship not found")
)
