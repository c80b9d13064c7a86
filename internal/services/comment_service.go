package services

import (
	"context"

	"github.com/avoronin/pikcha/backend/internal/models"
	"github.com/avoronin/pikcha/backend/internal/repositories"
	"github.com/sirupsen/logrus"
)

// CommentService wraps the multi-entity comment flow behind single
// operations: a comment create also bumps the post's denormalized counter
// and notifies the post owner, a delete reverses the counter. None of the
// steps share a transaction; the counter uses the storage layer's atomic
// increment, and notification fan-out is best-effort.
type CommentService struct {
	comments      repositories.CommentRepository
	posts         repositories.PostRepository
	users         repositories.UserRepository
	notifications repositories.NotificationRepository
	log           *logrus.Logger
}

// NewCommentService creates a new CommentService
func NewCommentService(
	commentRepo repositories.CommentRepository,
	postRepo repositories.PostRepository,
	userRepo repositories.UserRepository,
	notifRepo repositories.NotificationRepository,
	log *logrus.Logger,
) *CommentService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &CommentService{
		comments:      commentRepo,
		posts:         postRepo,
		users:         userRepo,
		notifications: notifRepo,
		log:           log,
	}
}

// GetPostComments returns a post's comments in creation order.
func (s *CommentService) GetPostComments(ctx context.Context, postID string) ([]models.Comment, error) {
	return s.comments.GetCommentsByPostID(ctx, postID)
}

// CreateComment creates a comment on a post, increments the post's
// comments_count and notifies the post owner. The post must exist before
// anything is written. A notification failure never fails the create.
func (s *CommentService) CreateComment(ctx context.Context, postID, userUID, profileImage, text string) (*models.Comment, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:       postID,
		UserID:       userUID,
		ProfileImage: profileImage,
		CommentText:  text,
		Likes:        []string{},
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	if err := s.posts.IncrementCommentsCount(ctx, postID); err != nil {
		// The comment is already persisted; the counter now understates the
		// true count until the next successful update.
		s.log.WithFields(logrus.Fields{"post_id": postID, "comment_id": comment.ID.Hex()}).
			WithError(err).Error("failed to increment comments count")
	}

	// Sender lookup kept for message personalization even though the
	// content stays generic.
	if _, err := s.users.GetUserByUID(userUID); err != nil {
		s.log.WithField("user_id", userUID).WithError(err).Warn("comment sender lookup failed")
	}

	notification := &models.Notification{
		UserID:   post.UserID,
		Type:     models.NotificationTypeComment,
		Content:  "commented your post.",
		SenderID: userUID,
	}
	if err := s.notifications.CreateNotification(notification); err != nil {
		s.log.WithFields(logrus.Fields{"post_id": postID, "recipient": post.UserID}).
			WithError(err).Error("failed to create comment notification")
	}

	return comment, nil
}

// DeleteComment deletes a comment and decrements the owning post's
// comments_count. A missing comment leaves every counter untouched.
func (s *CommentService) DeleteComment(ctx context.Context, commentID string) error {
	comment, err := s.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return err
	}

	if err := s.comments.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	if err := s.posts.DecrementCommentsCount(ctx, comment.PostID); err != nil {
		s.log.WithFields(logrus.Fields{"post_id": comment.PostID, "comment_id": commentID}).
			WithError(err).Error("failed to decrement comments count")
	}
	return nil
}

// ToggleLike flips the membership of userUID in the comment's likes set and
// returns the resulting count and state. The membership test precedes the
// mutation, so the set never holds duplicates.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userUID string) (*models.CommentLikeResult, error) {
	comment, err := s.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	// Legacy comments may have been written without a likes array.
	likes := comment.Likes
	if likes == nil {
		likes = []string{}
	}

	isLiked := false
	for _, uid := range likes {
		if uid == userUID {
			isLiked = true
			break
		}
	}

	if isLiked {
		filtered := make([]string, 0, len(likes))
		for _, uid := range likes {
			if uid != userUID {
				filtered = append(filtered, uid)
			}
		}
		likes = filtered
	} else {
		likes = append(likes, userUID)
	}

	if err := s.comments.SetLikes(ctx, commentID, likes); err != nil {
		return nil, err
	}

	return &models.CommentLikeResult{
		ID:         comment.ID,
		LikesCount: len(likes),
		IsLiked:    !isLiked,
	}, nil
}
