package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/avoronin/pikcha/backend/internal/models"
	"github.com/avoronin/pikcha/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// CommentService is the slice of the comment service the handler depends on
type CommentService interface {
	GetPostComments(ctx context.Context, postID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, postID, userUID, profileImage, text string) (*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
	ToggleLike(ctx context.Context, commentID, userUID string) (*models.CommentLikeResult, error)
}

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/comments/:postId", h.GetPostComments)
	g.POST("/comments/:postId", h.CreateComment)
	g.DELETE("/comments/:commentId", h.DeleteComment)
	g.POST("/comments/:commentId/like", h.LikeComment)
}

// GetPostComments returns all comments of a post in creation order
func (h *CommentHandler) GetPostComments(c echo.Context) error {
	postID := c.Param("postId")

	comments, err := h.commentService.GetPostComments(c.Request().Context(), postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comments")
	}

	return c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	postID := c.Param("postId")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), postID, claims.UID, claims.ProfileImage, req.CommentText)
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create comment")
	}

	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment deletes a comment and updates the post counter
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID := c.Param("commentId")

	if err := h.commentService.DeleteComment(c.Request().Context(), commentID); err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete comment")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted"})
}

// LikeComment toggles the current user's like on a comment
func (h *CommentHandler) LikeComment(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	commentID := c.Param("commentId")

	result, err := h.commentService.ToggleLike(c.Request().Context(), commentID, claims.UID)
	if err != nil {
		if errors.Is(err, repositories.ErrCommentNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to like comment")
	}

	return c.JSON(http.StatusOK, result)
}
