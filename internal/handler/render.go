package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}).ParseFS(templateFS, "templates/*.html"))

// render рендерит шаблон в байты - главной странице они нужны целиком для кеша.
func render(name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("could not render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func sendHTML(c *fiber.Ctx, status int, data []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(data)
}

func renderHTML(c *fiber.Ctx, status int, name string, data interface{}) error {
	page, err := render(name, data)
	if err != nil {
		return err
	}
	return sendHTML(c, status, page)
}

// NotFound отдает отдельный шаблон 404 - и для неизвестных путей,
// и для несуществующих постов, групп и пользователей.
func (h *Handler) NotFound(c *fiber.Ctx) error {
	return renderHTML(c, fiber.StatusNotFound, "404.html", nil)
}
