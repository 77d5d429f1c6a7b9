package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/user"
)

// FollowIndex - лента подписок: посты авторов, на которых подписан viewer.
func (h *Handler) FollowIndex(c *fiber.Ctx) error {
	viewerID, _ := auth.UserID(c)

	feedPage, err := h.Feed.Subscriptions(viewerID, c.QueryInt("page", 1))
	if err != nil {
		return err
	}

	return renderHTML(c, fiber.StatusOK, "follow.html", fiber.Map{
		"Page": feedPage,
	})
}

// ProfileFollow подписывает viewer на автора. Подписка на себя и повторная
// подписка молча игнорируются, редирект на профиль одинаковый в любом исходе.
func (h *Handler) ProfileFollow(c *fiber.Ctx) error {
	username := c.Params("username")

	err := h.Follows.Follow(auth.Context(c), username)
	if errors.Is(err, user.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/profile/"+username+"/", fiber.StatusFound)
}

// ProfileUnfollow снимает подписку. Отписка без существующего ребра - 404.
func (h *Handler) ProfileUnfollow(c *fiber.Ctx) error {
	username := c.Params("username")

	err := h.Follows.Unfollow(auth.Context(c), username)
	if errors.Is(err, user.ErrNotFound) || errors.Is(err, follow.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/profile/"+username+"/", fiber.StatusFound)
}
