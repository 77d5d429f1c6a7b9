package group

import (
	"errors"

	"github.com/VitaminP8/lenta/internal/model"
)

var ErrNotFound = errors.New("group not found")

type GroupStorage interface {
	CreateGroup(title, slug, description string) (*model.Group, error)
	GetGroupBySlug(slug string) (*model.Group, error)
	ListGroups() ([]*model.Group, error)
}
