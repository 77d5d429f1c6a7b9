package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/post"
)

type PostMemoryStorage struct {
	mu     sync.Mutex
	posts  map[string]*model.Post
	nextId int // Для хранения актуального ID (можно было использовать UUID)
}

func NewPostMemoryStorage() *PostMemoryStorage {
	return &PostMemoryStorage{
		posts:  make(map[string]*model.Post),
		nextId: 1,
	}
}

func (s *PostMemoryStorage) CreatePost(ctx context.Context, text string, groupID *string, image string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := strconv.Itoa(s.nextId)
	s.nextId++

	p := &model.Post{
		ID:        id,
		Text:      text,
		AuthorID:  fmt.Sprint(userID),
		GroupID:   groupID,
		Image:     image,
		CreatedAt: time.Now(),
	}

	s.posts[id] = p
	return p, nil
}

func (s *PostMemoryStorage) GetPostByID(id string) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	return p, nil
}

// UpdatePost меняет текст, группу и картинку поста. Разрешено только автору.
// Пустая строка image означает "оставить текущую картинку".
func (s *PostMemoryStorage) UpdatePost(ctx context.Context, id, text string, groupID *string, image string) (*model.Post, error) {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return nil, fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	if p.AuthorID != fmt.Sprint(userID) {
		return nil, post.ErrForbidden
	}

	p.Text = text
	p.GroupID = groupID
	if image != "" {
		p.Image = image
	}

	return p, nil
}

func (s *PostMemoryStorage) DeletePostByID(ctx context.Context, id string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, exists := s.posts[id]
	if !exists {
		return fmt.Errorf("post %s: %w", id, post.ErrNotFound)
	}

	if p.AuthorID != fmt.Sprint(userID) {
		return post.ErrForbidden
	}

	delete(s.posts, id)
	return nil
}

func (s *PostMemoryStorage) ListAll(limit, offset int) ([]*model.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return window(s.sorted(func(p *model.Post) bool { return true }), limit, offset)
}

func (s *PostMemoryStorage) ListByGroup(groupID string, limit, offset int) ([]*model.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return window(s.sorted(func(p *model.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), limit, offset)
}

func (s *PostMemoryStorage) ListByAuthor(authorID string, limit, offset int) ([]*model.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return window(s.sorted(func(p *model.Post) bool {
		return p.AuthorID == authorID
	}), limit, offset)
}

func (s *PostMemoryStorage) ListByAuthors(authorIDs []string, limit, offset int) ([]*model.Post, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]bool, len(authorIDs))
	for _, id := range authorIDs {
		wanted[id] = true
	}

	return window(s.sorted(func(p *model.Post) bool {
		return wanted[p.AuthorID]
	}), limit, offset)
}

// sorted возвращает посты под фильтром в порядке "сначала новые".
// При равных created_at старше тот, у кого меньше ID, - порядок детерминированный.
func (s *PostMemoryStorage) sorted(keep func(*model.Post) bool) []*model.Post {
	var posts []*model.Post
	for _, p := range s.posts {
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

	return posts
}

func window(posts []*model.Post, limit, offset int) ([]*model.Post, int, error) {
	total := len(posts)

	// отрицательное смещение (например, после переполнения у вызывающего)
	// читается как запрос за последней страницей
	if offset < 0 || offset >= total {
		return []*model.Post{}, total, nil
	}

	end := offset + limit
	if end > total {
		end = total
	}

	return posts[offset:end], total, nil
}
