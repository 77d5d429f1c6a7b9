package postgres

import (
	"context"
	"fmt"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/user"
	"github.com/VitaminP8/lenta/models"
	"github.com/jinzhu/gorm"
)

type FollowPostgresStorage struct{}

func NewFollowPostgresStorage() *FollowPostgresStorage {
	return &FollowPostgresStorage{}
}

// Follow создает ребро подписки viewer -> author. Подписка на себя и повторная
// подписка - тихие no-op: ребер от них не прибавляется, ошибки нет.
func (s *FollowPostgresStorage) Follow(ctx context.Context, username string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	author, err := findUserByUsername(username)
	if err != nil {
		return err
	}

	if follow.IsSelfFollow(userID, author.ID) {
		return nil
	}

	var existEdge models.Follow
	err = DB.Where("user_id = ? AND author_id = ?", userID, author.ID).First(&existEdge).Error
	if err == nil {
		return nil
	}
	if !gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("could not check follow edge: %w", err)
	}

	err = DB.Create(&models.Follow{UserID: userID, AuthorID: author.ID}).Error
	if err != nil {
		return fmt.Errorf("could not create follow edge: %w", err)
	}

	return nil
}

func (s *FollowPostgresStorage) Unfollow(ctx context.Context, username string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	author, err := findUserByUsername(username)
	if err != nil {
		return err
	}

	var edge models.Follow
	err = DB.Where("user_id = ? AND author_id = ?", userID, author.ID).First(&edge).Error
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("user %d does not follow %s: %w", userID, username, follow.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("could not get follow edge: %w", err)
	}

	err = DB.Delete(&edge).Error
	if err != nil {
		return fmt.Errorf("could not delete follow edge: %w", err)
	}

	return nil
}

func (s *FollowPostgresStorage) IsFollowing(userID uint, username string) (bool, error) {
	author, err := findUserByUsername(username)
	if err != nil {
		return false, err
	}

	var count int
	err = DB.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", userID, author.ID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("could not check follow edge: %w", err)
	}

	return count > 0, nil
}

func (s *FollowPostgresStorage) ListFollowing(userID uint) ([]uint, error) {
	var edges []models.Follow
	err := DB.Where("user_id = ?", userID).Order("author_id").Find(&edges).Error
	if err != nil {
		return nil, fmt.Errorf("could not get follow edges: %w", err)
	}

	authorIDs := make([]uint, 0, len(edges))
	for _, edge := range edges {
		authorIDs = append(authorIDs, edge.AuthorID)
	}

	return authorIDs, nil
}

func findUserByUsername(username string) (*models.User, error) {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("author %s: %w", username, user.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return &u, nil
}
