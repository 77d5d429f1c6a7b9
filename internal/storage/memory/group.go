package memory

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/model"
)

type GroupMemoryStorage struct {
	mu     sync.Mutex
	groups map[string]*model.Group // ключ - slug
	nextId int
}

func NewGroupMemoryStorage() *GroupMemoryStorage {
	return &GroupMemoryStorage{
		groups: make(map[string]*model.Group),
		nextId: 1,
	}
}

func (s *GroupMemoryStorage) CreateGroup(title, slug, description string) (*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[slug]; exists {
		return nil, fmt.Errorf("group with slug %s already exists", slug)
	}

	id := strconv.Itoa(s.nextId)
	s.nextId++

	grp := &model.Group{
		ID:          id,
		Title:       title,
		Slug:        slug,
		Description: description,
	}

	s.groups[slug] = grp
	return grp, nil
}

func (s *GroupMemoryStorage) GetGroupBySlug(slug string) (*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grp, exists := s.groups[slug]
	if !exists {
		return nil, fmt.Errorf("group %s: %w", slug, group.ErrNotFound)
	}

	return grp, nil
}

func (s *GroupMemoryStorage) ListGroups() ([]*model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]*model.Group, 0, len(s.groups))
	for _, grp := range s.groups {
		groups = append(groups, grp)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Slug < groups[j].Slug
	})

	return groups, nil
}
