package mocks

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/user"
)

// MockUserStorage - ручной дублер хранилища пользователей, без паролей и JWT.
type MockUserStorage struct {
	mu     sync.Mutex
	users  []*model.User
	nextID int
	Err    error
}

func NewMockUserStorage() *MockUserStorage {
	return &MockUserStorage{nextID: 1}
}

func (m *MockUserStorage) AddUser(username string) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := &model.User{
		ID:       strconv.Itoa(m.nextID),
		Username: username,
		Email:    username + "@example.com",
	}
	m.nextID++
	m.users = append(m.users, u)
	return u
}

func (m *MockUserStorage) RegisterUser(username, email, password string) (*model.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.AddUser(username), nil
}

func (m *MockUserStorage) LoginUser(username, password string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return "mock-token", nil
}

func (m *MockUserStorage) GetUserByUsername(username string) (*model.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
}

func (m *MockUserStorage) GetUserByID(id uint) (*model.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.ID == fmt.Sprint(id) {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user %d: %w", id, user.ErrNotFound)
}
