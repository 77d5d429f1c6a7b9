package postgres

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/VitaminP8/lenta/internal/config"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/user"
	"github.com/VitaminP8/lenta/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jinzhu/gorm"

	"golang.org/x/crypto/bcrypt"
)

type UserPostgresStorage struct{}

func NewUserPostgresStorage() *UserPostgresStorage {
	return &UserPostgresStorage{}
}

func (s *UserPostgresStorage) RegisterUser(username, email, password string) (*model.User, error) {
	// проверка - существует ли такой пользователь
	var existUser models.User
	err := DB.Where("username = ?", username).First(&existUser).Error
	if err == nil {
		return nil, fmt.Errorf("user with username %s: %w", username, user.ErrExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
	}

	err = DB.Create(u).Error
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserModel(u), nil
}

func (s *UserPostgresStorage) LoginUser(username, password string) (string, error) {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if err != nil {
		return "", fmt.Errorf("user with username %s: %w", username, user.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return "", user.ErrInvalidCredentials
	}

	// достаем из .env jwtSecret
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", errors.New("JWT_SECRET is not set in environment")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  u.ID,
		"username": u.Username,
		"exp":      time.Now().Add(config.TokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *UserPostgresStorage) GetUserByUsername(username string) (*model.User, error) {
	var u models.User
	err := DB.Where("username = ?", username).First(&u).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %s: %w", username, user.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return toUserModel(&u), nil
}

func (s *UserPostgresStorage) GetUserByID(id uint) (*model.User, error) {
	var u models.User
	err := DB.First(&u, id).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("user %d: %w", id, user.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}

	return toUserModel(&u), nil
}

func toUserModel(u *models.User) *model.User {
	return &model.User{
		ID:       fmt.Sprint(u.ID),
		Username: u.Username,
		Email:    u.Email,
	}
}
