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

type CommentMemoryStorage struct {
	mu          sync.Mutex
	comments    map[string]*model.Comment
	nextID      int
	postStorage post.PostStorage // Хранилище постов (внедрение зависимости (DI))
}

func NewCommentMemoryStorage(postStore post.PostStorage) *CommentMemoryStorage {
	return &CommentMemoryStorage{
		comments:    make(map[string]*model.Comment),
		nextID:      1,
		postStorage: postStore,
	}
}

func (s *CommentMemoryStorage) CreateComment(ctx context.Context, postID, text string) (*model.Comment, error) {
	if len(text) == 0 || len(text) > 2000 {
		return nil, fmt.Errorf("text is too long or empty")
	}

	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.postStorage.GetPostByID(postID); err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, post.ErrNotFound)
	}

	id := strconv.Itoa(s.nextID)
	s.nextID++

	c := &model.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  fmt.Sprint(userID),
		Text:      text,
		CreatedAt: time.Now(),
	}

	s.comments[id] = c
	return c, nil
}

// GetComments возвращает комментарии поста в хронологическом порядке.
// Комментарии удаленного поста наружу не отдаются.
func (s *CommentMemoryStorage) GetComments(postID string) ([]*model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.postStorage.GetPostByID(postID); err != nil {
		return nil, fmt.Errorf("post %s: %w", postID, post.ErrNotFound)
	}

	var comments []*model.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		a, _ := strconv.Atoi(comments[i].ID)
		b, _ := strconv.Atoi(comments[j].ID)
		return a < b
	})

	return comments, nil
}
