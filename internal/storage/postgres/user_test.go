package postgres

import (
	"fmt"
	"os"
	"testing"

	"github.com/VitaminP8/lenta/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPostgresStorage_RegisterUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Successful user registration", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		username := "testuser"
		email := "test@example.com"
		password := "password123"

		u, err := storage.RegisterUser(username, email, password)
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, username, u.Username)
		assert.Equal(t, email, u.Email)
	})

	t.Run("Register user with duplicate username", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		username := "duplicateuser"
		email := "duplicate@example.com"
		password := "password123"

		// Первая регистрация должна быть успешной
		_, err := storage.RegisterUser(username, email, password)
		require.NoError(t, err)

		// Вторая регистрация с тем же именем пользователя должна вернуть ошибку
		_, err = storage.RegisterUser(username, "another@example.com", "anotherpassword")
		assert.Error(t, err)
		assert.ErrorIs(t, err, user.ErrExists)
	})
}

func TestUserPostgresStorage_LoginUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	// Устанавливаем переменную окружения JWT_SECRET перед тестами
	originalJWTSecret := os.Getenv("JWT_SECRET")
	err := os.Setenv("JWT_SECRET", "test_secret_key_for_jwt")
	require.NoError(t, err)

	// Восстанавливаем оригинальное значение после тестов
	defer os.Setenv("JWT_SECRET", originalJWTSecret)

	t.Run("Successful login", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		username := "loginuser"
		email := "login@example.com"
		password := "loginpassword123"

		_, err = storage.RegisterUser(username, email, password)
		require.NoError(t, err)

		token, err := storage.LoginUser(username, password)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		// Простая проверка, что это похоже на JWT токен
		// JWT токен должен содержать две точки, разделяющие три части
		assert.Contains(t, token, ".")
		parts := 0
		for _, char := range token {
			if char == '.' {
				parts++
			}
		}
		assert.Equal(t, 2, parts, "JWT token должен состоять из трех частей, разделенных двумя точками")
	})

	t.Run("Login with incorrect password", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		username := "wrongpassuser"
		email := "wrongpass@example.com"
		password := "correctpassword123"

		_, err = storage.RegisterUser(username, email, password)
		require.NoError(t, err)

		_, err := storage.LoginUser(username, "wrongpassword")
		assert.Error(t, err)
		assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	})

	t.Run("Login with non-existent user", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		_, err := storage.LoginUser("nonexistentuser", "anypassword")
		assert.Error(t, err)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserPostgresStorage_GetUser(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Get user by username", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "leo")

		u, err := storage.GetUserByUsername("leo")
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, fmt.Sprint(userID), u.ID)
		assert.Equal(t, "leo", u.Username)
	})

	t.Run("Get not exist user by username", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u, err := storage.GetUserByUsername("ghost")
		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("Get user by id", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		userID := createTestUser(t, "leo")

		u, err := storage.GetUserByID(userID)
		assert.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, "leo", u.Username)
	})

	t.Run("Get not exist user by id", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		u, err := storage.GetUserByID(999)
		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestUserPostgresStorage_ErrorCases(t *testing.T) {
	storage := NewUserPostgresStorage()

	t.Run("Login without JWT_SECRET set", func(t *testing.T) {
		// Настраиваем тестовую БД
		oldDB := setupTestDB(t)
		defer teardownTestDB(oldDB)

		// Сохраняем текущее значение JWT_SECRET и сбрасываем его
		originalJWTSecret := os.Getenv("JWT_SECRET")
		os.Unsetenv("JWT_SECRET")
		defer os.Setenv("JWT_SECRET", originalJWTSecret)

		username := "jwt_secret_test"
		email := "jwt_secret@example.com"
		password := "password123"

		_, err := storage.RegisterUser(username, email, password)
		require.NoError(t, err)

		// Пытаемся войти без установленного JWT_SECRET
		_, err = storage.LoginUser(username, password)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET is not set")
	})
}
