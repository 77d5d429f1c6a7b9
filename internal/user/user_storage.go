package user

import (
	"errors"

	"github.com/VitaminP8/lenta/internal/model"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrExists             = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid password or username")
)

type UserStorage interface {
	RegisterUser(username, email, password string) (*model.User, error)
	LoginUser(username, password string) (string, error) // JWT
	GetUserByUsername(username string) (*model.User, error)
	GetUserByID(id uint) (*model.User, error)
}
