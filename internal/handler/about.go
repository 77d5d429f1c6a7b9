package handler

import "github.com/gofiber/fiber/v2"

// AboutAuthor - статическая страница об авторе проекта.
func (h *Handler) AboutAuthor(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, "about_author.html", nil)
}

// AboutTech - статическая страница о технологиях проекта.
func (h *Handler) AboutTech(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusOK, "about_tech.html", nil)
}
