package comment

import (
	"context"
	"errors"

	"github.com/VitaminP8/lenta/internal/model"
)

var ErrNotFound = errors.New("comment not found")

type CommentStorage interface {
	CreateComment(ctx context.Context, postID, text string) (*model.Comment, error)
	GetComments(postID string) ([]*model.Comment, error) // в хронологическом порядке
}
