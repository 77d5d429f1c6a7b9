package memory

import (
	"errors"
	"testing"

	"github.com/VitaminP8/lenta/internal/group"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMemoryStorage(t *testing.T) {
	storage := NewGroupMemoryStorage()

	t.Run("Create and get by slug", func(t *testing.T) {
		created, err := storage.CreateGroup("Котики", "cats", "Все о котиках")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)

		found, err := storage.GetGroupBySlug("cats")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "Котики", found.Title)
	})

	t.Run("Duplicate slug", func(t *testing.T) {
		_, err := storage.CreateGroup("Другие котики", "cats", "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Unknown slug yields not found", func(t *testing.T) {
		_, err := storage.GetGroupBySlug("dogs")
		assert.Error(t, err)
		assert.True(t, errors.Is(err, group.ErrNotFound))
	})

	t.Run("List groups sorted by slug", func(t *testing.T) {
		_, err := storage.CreateGroup("Собаки", "dogs", "")
		require.NoError(t, err)

		groups, err := storage.ListGroups()
		require.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "cats", groups[0].Slug)
		assert.Equal(t, "dogs", groups[1].Slug)
	})
}
