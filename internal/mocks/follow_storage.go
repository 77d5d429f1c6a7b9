package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/VitaminP8/lenta/internal/follow"
)

// MockFollowStorage - ручной дублер хранилища подписок.
// Ребра задаются напрямую через SetEdge, без поиска пользователей.
type MockFollowStorage struct {
	mu    sync.Mutex
	edges map[uint]map[uint]bool
	// Following отвечает на IsFollowing по username, без поиска пользователей.
	Following map[string]bool
	Err       error
}

func NewMockFollowStorage() *MockFollowStorage {
	return &MockFollowStorage{
		edges:     make(map[uint]map[uint]bool),
		Following: make(map[string]bool),
	}
}

func (m *MockFollowStorage) SetEdge(userID, authorID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.edges[userID] == nil {
		m.edges[userID] = make(map[uint]bool)
	}
	m.edges[userID][authorID] = true
}

func (m *MockFollowStorage) Follow(ctx context.Context, username string) error {
	return m.Err
}

func (m *MockFollowStorage) Unfollow(ctx context.Context, username string) error {
	if m.Err != nil {
		return m.Err
	}
	return follow.ErrNotFound
}

func (m *MockFollowStorage) IsFollowing(userID uint, username string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Following[username], nil
}

func (m *MockFollowStorage) ListFollowing(userID uint) ([]uint, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	authorIDs := make([]uint, 0, len(m.edges[userID]))
	for authorID := range m.edges[userID] {
		authorIDs = append(authorIDs, authorID)
	}
	sort.Slice(authorIDs, func(i, j int) bool { return authorIDs[i] < authorIDs[j] })
	return authorIDs, nil
}
