package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/config"
	"github.com/VitaminP8/lenta/internal/user"
)

type signupForm struct {
	Username string `form:"username" validate:"required,alphanum"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
	Next     string `form:"next"`
}

func (h *Handler) SignupPage(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, "signup.html", fiber.Map{"Error": ""})
}

// Signup регистрирует пользователя и сразу логинит его.
func (h *Handler) Signup(c *fiber.Ctx) error {
	var form signupForm
	if err := c.BodyParser(&form); err != nil {
		return renderHTML(c, fiber.StatusBadRequest, "signup.html", fiber.Map{"Error": "не удалось прочитать форму"})
	}
	if err := validate.Struct(&form); err != nil {
		return renderHTML(c, fiber.StatusBadRequest, "signup.html", fiber.Map{"Error": "проверьте имя пользователя, почту и пароль"})
	}

	_, err := h.Users.RegisterUser(form.Username, form.Email, form.Password)
	if errors.Is(err, user.ErrExists) {
		return renderHTML(c, fiber.StatusBadRequest, "signup.html", fiber.Map{"Error": "такой пользователь уже существует"})
	}
	if err != nil {
		return err
	}

	token, err := h.Users.LoginUser(form.Username, form.Password)
	if err != nil {
		return err
	}

	setTokenCookie(c, token)
	return c.Redirect("/", fiber.StatusFound)
}

func (h *Handler) LoginPage(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, "login.html", fiber.Map{
		"Error": "",
		"Next":  c.Query("next"),
	})
}

// Login выдает JWT в cookie и возвращает на страницу из next (или на главную).
func (h *Handler) Login(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		return renderHTML(c, fiber.StatusBadRequest, "login.html", fiber.Map{"Error": "не удалось прочитать форму", "Next": ""})
	}
	if err := validate.Struct(&form); err != nil {
		return renderHTML(c, fiber.StatusBadRequest, "login.html", fiber.Map{"Error": "имя пользователя и пароль обязательны", "Next": form.Next})
	}

	token, err := h.Users.LoginUser(form.Username, form.Password)
	if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInvalidCredentials) {
		return renderHTML(c, fiber.StatusBadRequest, "login.html", fiber.Map{"Error": "неверное имя пользователя или пароль", "Next": form.Next})
	}
	if err != nil {
		return err
	}

	setTokenCookie(c, token)

	next := form.Next
	if next == "" {
		next = "/"
	}
	return c.Redirect(next, fiber.StatusFound)
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/", fiber.StatusFound)
}

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Expires:  time.Now().Add(config.TokenTTL),
		HTTPOnly: true,
	})
}
