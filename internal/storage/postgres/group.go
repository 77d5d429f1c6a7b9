package postgres

import (
	"fmt"

	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/models"
	"github.com/jinzhu/gorm"
)

type GroupPostgresStorage struct{}

func NewGroupPostgresStorage() *GroupPostgresStorage {
	return &GroupPostgresStorage{}
}

func (s *GroupPostgresStorage) CreateGroup(title, slug, description string) (*model.Group, error) {
	var existGroup models.Group
	err := DB.Where("slug = ?", slug).First(&existGroup).Error
	if err == nil {
		return nil, fmt.Errorf("group with slug %s already exists", slug)
	}

	grp := &models.Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	err = DB.Create(grp).Error
	if err != nil {
		return nil, fmt.Errorf("could not create group: %w", err)
	}

	return toGroupModel(grp), nil
}

func (s *GroupPostgresStorage) GetGroupBySlug(slug string) (*model.Group, error) {
	var grp models.Group
	err := DB.Where("slug = ?", slug).First(&grp).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("group %s: %w", slug, group.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get group: %w", err)
	}

	return toGroupModel(&grp), nil
}

func (s *GroupPostgresStorage) ListGroups() ([]*model.Group, error) {
	var rows []models.Group
	err := DB.Order("slug").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("could not get groups: %w", err)
	}

	results := make([]*model.Group, 0, len(rows))
	for i := range rows {
		results = append(results, toGroupModel(&rows[i]))
	}

	return results, nil
}

func toGroupModel(g *models.Group) *model.Group {
	return &model.Group{
		ID:          fmt.Sprint(g.ID),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
