package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/user"
)

type FollowMemoryStorage struct {
	mu          sync.Mutex
	edges       map[uint]map[uint]bool // userID -> множество authorID
	userStorage user.UserStorage       // Хранилище пользователей (внедрение зависимости (DI))
}

func NewFollowMemoryStorage(userStore user.UserStorage) *FollowMemoryStorage {
	return &FollowMemoryStorage{
		edges:       make(map[uint]map[uint]bool),
		userStorage: userStore,
	}
}

// Follow создает ребро подписки viewer -> author. Подписка на себя и повторная
// подписка - тихие no-op: ребер от них не прибавляется, ошибки нет.
func (s *FollowMemoryStorage) Follow(ctx context.Context, username string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	authorID, err := s.authorID(username)
	if err != nil {
		return err
	}

	if follow.IsSelfFollow(userID, authorID) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edges[userID] == nil {
		s.edges[userID] = make(map[uint]bool)
	}
	s.edges[userID][authorID] = true
	return nil
}

func (s *FollowMemoryStorage) Unfollow(ctx context.Context, username string) error {
	userID, err := auth.GetUserIDFromContext(ctx)
	if err != nil {
		return fmt.Errorf("unauthorized: %w", err)
	}

	authorID, err := s.authorID(username)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.edges[userID][authorID] {
		return fmt.Errorf("user %d does not follow %s: %w", userID, username, follow.ErrNotFound)
	}

	delete(s.edges[userID], authorID)
	return nil
}

func (s *FollowMemoryStorage) IsFollowing(userID uint, username string) (bool, error) {
	authorID, err := s.authorID(username)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.edges[userID][authorID], nil
}

func (s *FollowMemoryStorage) ListFollowing(userID uint) ([]uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	authorIDs := make([]uint, 0, len(s.edges[userID]))
	for authorID := range s.edges[userID] {
		authorIDs = append(authorIDs, authorID)
	}

	sort.Slice(authorIDs, func(i, j int) bool { return authorIDs[i] < authorIDs[j] })

	return authorIDs, nil
}

func (s *FollowMemoryStorage) authorID(username string) (uint, error) {
	author, err := s.userStorage.GetUserByUsername(username)
	if err != nil {
		return 0, fmt.Errorf("author %s: %w", username, err)
	}

	id, err := strconv.Atoi(author.ID)
	if err != nil {
		return 0, fmt.Errorf("invalid author ID: %w", err)
	}

	return uint(id), nil
}
