package mocks

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/post"
)

// MockPostStorage - ручной дублер хранилища постов. Посты кладутся напрямую
// через AddPost (с любым created_at), а Err заставляет любой метод вернуть ошибку.
type MockPostStorage struct {
	mu     sync.Mutex
	posts  []*model.Post
	nextID int
	Err    error
}

func NewMockPostStorage() *MockPostStorage {
	return &MockPostStorage{nextID: 1}
}

// AddPost добавляет пост в обход авторизации, с полным контролем над полями.
func (m *MockPostStorage) AddPost(p *model.Post) *model.Post {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = strconv.Itoa(m.nextID)
	}
	m.nextID++
	m.posts = append(m.posts, p)
	return p
}

func (m *MockPostStorage) CreatePost(ctx context.Context, text string, groupID *string, image string) (*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return m.AddPost(&model.Post{
		Text:     text,
		AuthorID: fmt.Sprint(userID),
		GroupID:  groupID,
		Image:    image,
	}), nil
}

func (m *MockPostStorage) GetPostByID(id string) (*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, post.ErrNotFound
}

func (m *MockPostStorage) UpdatePost(ctx context.Context, id, text string, groupID *string, image string) (*model.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	p, err := m.GetPostByID(id)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.GroupID = groupID
	if image != "" {
		p.Image = image
	}
	return p, nil
}

func (m *MockPostStorage) DeletePostByID(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.posts {
		if p.ID == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return post.ErrNotFound
}

func (m *MockPostStorage) ListAll(limit, offset int) ([]*model.Post, int, error) {
	return m.list(func(p *model.Post) bool { return true }, limit, offset)
}

func (m *MockPostStorage) ListByGroup(groupID string, limit, offset int) ([]*model.Post, int, error) {
	return m.list(func(p *model.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}, limit, offset)
}

func (m *MockPostStorage) ListByAuthor(authorID string, limit, offset int) ([]*model.Post, int, error) {
	return m.list(func(p *model.Post) bool { return p.AuthorID == authorID }, limit, offset)
}

func (m *MockPostStorage) ListByAuthors(authorIDs []string, limit, offset int) ([]*model.Post, int, error) {
	wanted := make(map[string]bool, len(authorIDs))
	for _, id := range authorIDs {
		wanted[id] = true
	}
	return m.list(func(p *model.Post) bool { return wanted[p.AuthorID] }, limit, offset)
}

func (m *MockPostStorage) list(keep func(*model.Post) bool, limit, offset int) ([]*model.Post, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var posts []*model.Post
	for _, p := range m.posts {
		if keep(p) {
			posts = append(posts, p)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		a, _ := strconv.Atoi(posts[i].ID)
		b, _ := strconv.Atoi(posts[j].ID)
		return a > b
	})

	total := len(posts)
	if offset < 0 || offset >= total {
		return []*model.Post{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return posts[offset:end], total, nil
}
