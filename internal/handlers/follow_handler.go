package handlers

import (
	"errors"
	"net/http"

	"github.com/avoronin/pikcha/backend/internal/models"
	"github.com/avoronin/pikcha/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	followRepository       repositories.FollowRepository
	notificationRepository repositories.NotificationRepository
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followRepo repositories.FollowRepository, notifRepo repositories.NotificationRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:       followRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/follow/:userId", h.FollowUser)
	g.DELETE("/follow/:userId", h.UnfollowUser)
	g.GET("/follow/:userId/following", h.GetFollowing)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetUID := c.Param("userId")

	if targetUID == claims.UID {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}

	isFollowing, err := h.followRepository.IsFollowing(claims.UID, targetUID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if isFollowing {
		return echo.NewHTTPError(http.StatusConflict, "Already following this user")
	}

	follow := &models.Follow{
		FollowerID: claims.UID,
		UserID:     targetUID,
	}
	if err := h.followRepository.CreateFollow(follow); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	// Best-effort notification, same policy as comment fan-out
	notif := &models.Notification{
		UserID:   targetUID,
		Type:     models.NotificationTypeFollow,
		Content:  "started following you.",
		SenderID: claims.UID,
	}
	h.notificationRepository.CreateNotification(notif)

	return c.JSON(http.StatusOK, echo.Map{"following": true})
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	targetUID := c.Param("userId")

	if err := h.followRepository.DeleteFollow(claims.UID, targetUID); err != nil {
		if errors.Is(err, repositories.ErrFollowNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Follow relationship not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"following": false})
}

// GetFollowing returns the follow relations originating from a user
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	follows, err := h.followRepository.GetFollowing(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if follows == nil {
		follows = []models.Follow{}
	}
	return c.JSON(http.StatusOK, follows)
}
