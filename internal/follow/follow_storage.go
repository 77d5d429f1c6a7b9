package follow

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("follow edge not found")

// FollowStorage управляет ребрами подписок (viewer -> author).
// Follow на себя или на уже отслеживаемого автора - тихий no-op,
// Unfollow несуществующего ребра - ErrNotFound.
type FollowStorage interface {
	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
	IsFollowing(userID uint, username string) (bool, error)
	ListFollowing(userID uint) ([]uint, error) // ID авторов, на которых подписан userID
}
