package mocks

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/model"
)

// MockGroupStorage - ручной дублер хранилища групп.
type MockGroupStorage struct {
	mu     sync.Mutex
	groups []*model.Group
	nextID int
	Err    error
}

func NewMockGroupStorage() *MockGroupStorage {
	return &MockGroupStorage{nextID: 1}
}

func (m *MockGroupStorage) CreateGroup(title, slug, description string) (*model.Group, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grp := &model.Group{
		ID:          strconv.Itoa(m.nextID),
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	m.nextID++
	m.groups = append(m.groups, grp)
	return grp, nil
}

func (m *MockGroupStorage) GetGroupBySlug(slug string) (*model.Group, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, grp := range m.groups {
		if grp.Slug == slug {
			return grp, nil
		}
	}
	return nil, fmt.Errorf("group %s: %w", slug, group.ErrNotFound)
}

func (m *MockGroupStorage) ListGroups() ([]*model.Group, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*model.Group{}, m.groups...), nil
}
