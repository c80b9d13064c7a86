package repositories

import (
	"github.com/avoronin/pikcha/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerUID, followeeUID string) error
	IsFollowing(followerUID, followeeUID string) (bool, error)
	GetFollowing(followerUID string) ([]models.Follow, error)
	GetFollowersCount(followeeUID string) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

func (r *PostgresFollowRepository) DeleteFollow(followerUID, followeeUID string) error {
	res := r.db.Where("follower_id = ? AND user_id = ?", followerUID, followeeUID).Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFollowNotFound
	}
	return nil
}

func (r *PostgresFollowRepository) IsFollowing(followerUID, followeeUID string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ? AND user_id = ?", followerUID, followeeUID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowing returns the follow relations originating from a user,
// oldest first
func (r *PostgresFollowRepository) GetFollowing(followerUID string) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.Where("follower_id = ?", followerUID).Order("created_at ASC").Find(&follows).Error
	return follows, err
}

func (r *PostgresFollowRepository) GetFollowersCount(followeeUID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", followeeUID).Count(&count).Error
	return count, err
}
