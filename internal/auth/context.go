package auth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const userIDKey = contextKey("userID")

// CookieName - имя cookie, в которой хранится JWT токен после входа.
const CookieName = "token"

// LoginPath - страница входа, сюда уводим неавторизованные запросы.
const LoginPath = "/auth/login/"

const localsUserID = "userID"

var ErrNoUser = errors.New("user ID not found in context")

// Сохраняет userID в контексте
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// Достает userID из контекста
func GetUserIDFromContext(ctx context.Context) (uint, error) {
	val := ctx.Value(userIDKey)
	id, ok := val.(uint)
	if !ok {
		return 0, ErrNoUser
	}
	return id, nil
}

// ParseToken проверяет подпись и срок жизни токена и возвращает userID из claims.
func ParseToken(tokenStr, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errors.New("user_id claim missing")
	}

	return uint(idFloat), nil
}

// Middleware извлекает JWT из cookie или заголовка Authorization, валидирует его
// и сохраняет userID в locals. Запрос без токена (или с невалидным) проходит дальше
// как анонимный - обязательность авторизации навешивает RequireAuth.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFromRequest(c)
		if tokenStr == "" {
			return c.Next()
		}

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusInternalServerError).SendString("JWT secret not set")
		}

		userID, err := ParseToken(tokenStr, secret)
		if err != nil {
			// невалидный токен - пропускаем как анонимный запрос
			return c.Next()
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// RequireAuth редиректит анонимный запрос на страницу входа,
// сохраняя исходный путь в query-параметре next.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := UserID(c); !ok {
			return c.Redirect(LoginPath+"?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusFound)
		}
		return c.Next()
	}
}

// UserID возвращает userID текущего запроса (false для анонимного).
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localsUserID).(uint)
	return id, ok
}

// Context строит context.Context для слоя хранилищ из запроса fiber.
func Context(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if id, ok := UserID(c); ok {
		ctx = WithUserID(ctx, id)
	}
	return ctx
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieName); cookie != "" {
		return cookie
	}
	return extractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
}

func extractTokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
