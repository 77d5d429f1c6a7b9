package postgres

import (
	"context"
	"fmt"
	"strconv"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/models"
	"github.com/jinzhu/gorm"
)

type CommentPostgresStorage struct{}

func NewCommentPostgresStorage() *CommentPostgresStorage {
	return &CommentPostgresStorage{}
}

func (s *CommentPostgresStorage) CreateComment(ctx context.Context, postID, text string) (*model.Comment, error) {
	if len(text) == 0 || len(text) > 2000 {
		return nil, fmt.Errorf("text is too long or empty")
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	postIDInt, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}
	postIDUint := uint(postIDInt)

	var p models.Post
	err = DB.First(&p, postIDUint).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", postID, post.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	c := &models.Comment{
		PostID: postIDUint,
		UserID: userID,
		Text:   text,
	}

	err = DB.Create(c).Error
	if err != nil {
		return nil, fmt.Errorf("could not create comment: %w", err)
	}

	return toCommentModel(c), nil
}

func (s *CommentPostgresStorage) GetComments(postID string) ([]*model.Comment, error) {
	postIDInt, err := strconv.Atoi(postID)
	if err != nil {
		return nil, fmt.Errorf("invalid post ID: %w", err)
	}

	var p models.Post
	err = DB.First(&p, postIDInt).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", postID, post.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post: %w", err)
	}

	var rows []models.Comment
	err = DB.Where("post_id = ?", postIDInt).Order("created_at, id").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get comments: %w", err)
	}

	results := make([]*model.Comment, 0, len(rows))
	for i := range rows {
		results = append(results, toCommentModel(&rows[i]))
	}

	return results, nil
}

func toCommentModel(c *models.Comment) *model.Comment {
	return &model.Comment{
		ID:        fmt.Sprint(c.ID),
		PostID:    fmt.Sprint(c.PostID),
		AuthorID:  fmt.Sprint(c.UserID),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
