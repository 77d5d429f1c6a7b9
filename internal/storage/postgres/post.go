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

type PostPostgresStorage struct{}

func NewPostPostgresStorage() *PostPostgresStorage {
	return &PostPostgresStorage{}
}

func (s *PostPostgresStorage) CreatePost(ctx context.Context, text string, groupID *string, image string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	groupIDUint, err := parseGroupID(groupID)
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		Text:    text,
		UserID:  userID,
		GroupID: groupIDUint,
		Image:   image,
	}

	err = DB.Create(p).Error
	if err != nil {
		return nil, fmt.Errorf("could not create post: %w", err)
	}

	return toPostModel(p), nil
}

func (s *PostPostgresStorage) GetPostByID(id string) (*model.Post, error) {
	var p models.Post
	err := DB.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	return toPostModel(&p), nil
}

// UpdatePost меняет текст, группу и картинку поста. Разрешено только автору.
// Пустая строка image означает "оставить текущую картинку".
func (s *PostPostgresStorage) UpdatePost(ctx context.Context, id, text string, groupID *string, image string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	var p models.Post
	err = DB.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get post by id: %w", err)
	}

	if p.UserID != userID {
		return nil, post.ErrForbidden
	}

	groupIDUint, err := parseGroupID(groupID)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.GroupID = groupIDUint
	if image != "" {
		p.Image = image
	}

	err = DB.Save(&p).Error
	if err != nil {
		return nil, fmt.Errorf("could not update post: %w", err)
	}

	return toPostModel(&p), nil
}

func (s *PostPostgresStorage) DeletePostByID(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	var p models.Post
	err = DB.First(&p, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("could not get post by id: %w", err)
	}

	if p.UserID != userID {
		return post.ErrForbidden
	}

	// удаление поста уносит с собой его комментарии
	err = DB.Where("post_id = ?", p.ID).Delete(&models.Comment{}).Error
	if err != nil {
		return fmt.Errorf("could not delete comments: %w", err)
	}

	err = DB.Delete(&models.Post{}, p.ID).Error
	if err != nil {
		return fmt.Errorf("could not delete post: %w", err)
	}

	return nil
}

func (s *PostPostgresStorage) ListAll(limit, offset int) ([]*model.Post, int, error) {
	return listPosts(DB.Model(&models.Post{}), limit, offset)
}

func (s *PostPostgresStorage) ListByGroup(groupID string, limit, offset int) ([]*model.Post, int, error) {
	return listPosts(DB.Model(&models.Post{}).Where("group_id = ?", groupID), limit, offset)
}

func (s *PostPostgresStorage) ListByAuthor(authorID string, limit, offset int) ([]*model.Post, int, error) {
	return listPosts(DB.Model(&models.Post{}).Where("user_id = ?", authorID), limit, offset)
}

func (s *PostPostgresStorage) ListByAuthors(authorIDs []string, limit, offset int) ([]*model.Post, int, error) {
	if len(authorIDs) == 0 {
		return []*model.Post{}, 0, nil
	}
	return listPosts(DB.Model(&models.Post{}).Where("user_id IN (?)", authorIDs), limit, offset)
}

// listPosts выполняет запрос с сортировкой "сначала новые" и возвращает
// окно страницы вместе с полным количеством под фильтром.
func listPosts(query *gorm.DB, limit, offset int) ([]*model.Post, int, error) {
	var total int
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not count posts: %w", err)
	}

	// отрицательное смещение не отдаем базе - это запрос за последней страницей
	if offset < 0 {
		return []*model.Post{}, total, nil
	}

	var rows []models.Post
	err = query.Order("created_at desc, id desc").Limit(limit).Offset(offset).Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("could not get posts: %w", err)
	}

	results := make([]*model.Post, 0, len(rows))
	for i := range rows {
		results = append(results, toPostModel(&rows[i]))
	}

	return results, total, nil
}

func toPostModel(p *models.Post) *model.Post {
	result := &model.Post{
		ID:        fmt.Sprint(p.ID),
		Text:      p.Text,
		AuthorID:  fmt.Sprint(p.UserID),
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if p.GroupID != nil {
		gid := fmt.Sprint(*p.GroupID)
		result.GroupID = &gid
	}
	return result
}

func parseGroupID(groupID *string) (*uint, error) {
	if groupID == nil {
		return nil, nil
	}

	idInt, err := strconv.Atoi(*groupID)
	if err != nil {
		return nil, fmt.Errorf("invalid group ID: %w", err)
	}

	idUint := uint(idInt)
	return &idUint, nil
}
