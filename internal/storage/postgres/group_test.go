package postgres

import (
	"testing"

	"github.com/VitaminP8/lenta/internal/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupPostgresStorage_CreateGroup(t *testing.T) {
	storage := NewGroupPostgresStorage()

	t.Run("Success group creation", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		grp, err := storage.CreateGroup("Cats", "cats", "All about cats")
		assert.NoError(t, err)
		require.NotNil(t, grp)
		assert.NotEmpty(t, grp.ID)
		assert.Equal(t, "Cats", grp.Title)
		assert.Equal(t, "cats", grp.Slug)
		assert.Equal(t, "All about cats", grp.Description)
	})

	t.Run("Duplicate slug is rejected", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.CreateGroup("Cats", "cats", "All about cats")
		require.NoError(t, err)

		grp, err := storage.CreateGroup("Other cats", "cats", "Same slug")
		assert.Error(t, err)
		assert.Nil(t, grp)
		assert.Contains(t, err.Error(), "already exists")
	})
}

func TestGroupPostgresStorage_GetGroupBySlug(t *testing.T) {
	storage := NewGroupPostgresStorage()

	t.Run("Getting exists group", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		createTestGroup(t, "Cats", "cats")

		grp, err := storage.GetGroupBySlug("cats")
		assert.NoError(t, err)
		require.NotNil(t, grp)
		assert.Equal(t, "Cats", grp.Title)
	})

	t.Run("Trying to get not exist group", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		grp, err := storage.GetGroupBySlug("ghost")
		assert.Error(t, err)
		assert.Nil(t, grp)
		assert.ErrorIs(t, err, group.ErrNotFound)
	})
}

func TestGroupPostgresStorage_ListGroups(t *testing.T) {
	storage := NewGroupPostgresStorage()

	t.Run("Groups ordered by slug", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		createTestGroup(t, "Dogs", "dogs")
		createTestGroup(t, "Cats", "cats")

		groups, err := storage.ListGroups()
		assert.NoError(t, err)
		require.Len(t, groups, 2)
		assert.Equal(t, "cats", groups[0].Slug)
		assert.Equal(t, "dogs", groups[1].Slug)
	})

	t.Run("Empty list without groups", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		groups, err := storage.ListGroups()
		assert.NoError(t, err)
		assert.Len(t, groups, 0)
	})
}
