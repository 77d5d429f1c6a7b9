package memory

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/VitaminP8/lenta/internal/config"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/user"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type UserMemoryStorage struct {
	mu        sync.Mutex
	users     map[string]*model.User // ключ - username
	passwords map[string]string
	nextId    int
}

func NewUserMemoryStorage() *UserMemoryStorage {
	return &UserMemoryStorage{
		users:     make(map[string]*model.User),
		passwords: make(map[string]string),
		nextId:    1,
	}
}

func (s *UserMemoryStorage) RegisterUser(username, email, password string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.users[username]
	if exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id := strconv.Itoa(s.nextId)
	s.nextId++

	u := &model.User{
		ID:       id,
		Username: username,
		Email:    email,
	}

	s.users[username] = u
	s.passwords[username] = string(hashedPassword)

	return u, nil
}

func (s *UserMemoryStorage) LoginUser(username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[username]
	if !exists {
		return "", fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	hashedPassword, ok := s.passwords[username]
	if !ok {
		return "", fmt.Errorf("password for user %s not found", username)
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return "", user.ErrInvalidCredentials
	}

	// достаем из .env jwtSecret
	jwtSecret := config.GetEnv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set in environment")
	}

	userIDInt, err := strconv.Atoi(u.ID)
	if err != nil {
		return "", fmt.Errorf("invalid user ID: %w", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userIDInt,
		"username": u.Username,
		"exp":      time.Now().Add(config.TokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *UserMemoryStorage) GetUserByUsername(username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[username]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}

	return u, nil
}

func (s *UserMemoryStorage) GetUserByID(id uint) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == fmt.Sprint(id) {
			return u, nil
		}
	}

	return nil, fmt.Errorf("user %d: %w", id, user.ErrNotFound)
}
