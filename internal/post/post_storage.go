package post

import (
	"context"
	"errors"

	"github.com/VitaminP8/lenta/internal/model"
)

var (
	ErrNotFound  = errors.New("post not found")
	ErrForbidden = errors.New("forbidden: you are not the author of this post")
)

// PostStorage - хранилище постов. Все списки возвращаются в порядке
// "сначала новые" (created desc, при равенстве - id desc) вместе с полным
// количеством постов под фильтром, чтобы лента могла посчитать страницы.
type PostStorage interface {
	CreatePost(ctx context.Context, text string, groupID *string, image string) (*model.Post, error)
	GetPostByID(id string) (*model.Post, error)
	UpdatePost(ctx context.Context, id, text string, groupID *string, image string) (*model.Post, error)
	DeletePostByID(ctx context.Context, id string) error

	ListAll(limit, offset int) ([]*model.Post, int, error)
	ListByGroup(groupID string, limit, offset int) ([]*model.Post, int, error)
	ListByAuthor(authorID string, limit, offset int) ([]*model.Post, int, error)
	ListByAuthors(authorIDs []string, limit, offset int) ([]*model.Post, int, error)
}
