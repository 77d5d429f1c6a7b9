package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentPostgresStorage_CreateComment(t *testing.T) {
	storage := NewCommentPostgresStorage()

	t.Run("Success comment creation", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		postID := createTestPost(t, userID, "Test post", nil, time.Now())

		ctx := createUserContext(userID)

		comment, err := storage.CreateComment(ctx, fmt.Sprint(postID), "Test comment")
		assert.NoError(t, err)
		require.NotNil(t, comment)
		assert.Equal(t, "Test comment", comment.Text)
		assert.Equal(t, fmt.Sprint(postID), comment.PostID)
		assert.Equal(t, fmt.Sprint(userID), comment.AuthorID)

		// Проверяем, что комментарий действительно создался в БД
		var dbComment models.Comment
		err = DB.First(&dbComment, comment.ID).Error
		assert.NoError(t, err)
		assert.Equal(t, "Test comment", dbComment.Text)
	})

	t.Run("Comment for not exist post", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		ctx := createUserContext(userID)

		comment, err := storage.CreateComment(ctx, "999", "Test comment")
		assert.Error(t, err)
		assert.Nil(t, comment)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("Error: no authorization", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		postID := createTestPost(t, userID, "Test post", nil, time.Now())

		ctx := context.Background()

		comment, err := storage.CreateComment(ctx, fmt.Sprint(postID), "Test comment")
		assert.Error(t, err)
		assert.Nil(t, comment)
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("Empty or too long text", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		postID := createTestPost(t, userID, "Test post", nil, time.Now())

		ctx := createUserContext(userID)

		comment, err := storage.CreateComment(ctx, fmt.Sprint(postID), "")
		assert.Error(t, err)
		assert.Nil(t, comment)

		comment, err = storage.CreateComment(ctx, fmt.Sprint(postID), strings.Repeat("a", 2001))
		assert.Error(t, err)
		assert.Nil(t, comment)
	})
}

func TestCommentPostgresStorage_GetComments(t *testing.T) {
	storage := NewCommentPostgresStorage()

	t.Run("Comments in chronological order", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		postID := createTestPost(t, userID, "Test post", nil, time.Now())

		ctx := createUserContext(userID)

		first, err := storage.CreateComment(ctx, fmt.Sprint(postID), "First comment")
		require.NoError(t, err)
		second, err := storage.CreateComment(ctx, fmt.Sprint(postID), "Second comment")
		require.NoError(t, err)

		comments, err := storage.GetComments(fmt.Sprint(postID))
		assert.NoError(t, err)
		require.Len(t, comments, 2)
		// Старые комментарии идут первыми
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("Post without comments", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		postID := createTestPost(t, userID, "Test post", nil, time.Now())

		comments, err := storage.GetComments(fmt.Sprint(postID))
		assert.NoError(t, err)
		assert.Len(t, comments, 0)
	})

	t.Run("Comments for not exist post", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		comments, err := storage.GetComments("999")
		assert.Error(t, err)
		assert.Nil(t, comments)
		assert.ErrorIs(t, err, post.ErrNotFound)
	})

	t.Run("Comments of other posts are not mixed in", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "testuser")
		firstPostID := createTestPost(t, userID, "First post", nil, time.Now())
		secondPostID := createTestPost(t, userID, "Second post", nil, time.Now())

		ctx := createUserContext(userID)

		_, err := storage.CreateComment(ctx, fmt.Sprint(firstPostID), "On first post")
		require.NoError(t, err)
		_, err = storage.CreateComment(ctx, fmt.Sprint(secondPostID), "On second post")
		require.NoError(t, err)

		comments, err := storage.GetComments(fmt.Sprint(firstPostID))
		assert.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "On first post", comments[0].Text)
	})
}
