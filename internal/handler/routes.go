package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VitaminP8/lenta/internal/auth"
)

// Register навешивает все маршруты приложения.
// Порядок важен: catch-all 404 идет последним.
func (h *Handler) Register(app *fiber.App) {
	app.Use(auth.Middleware())

	app.Get("/", h.Index)
	app.Get("/group/:slug/", h.GroupPosts)

	app.Get("/about/author/", h.AboutAuthor)
	app.Get("/about/tech/", h.AboutTech)

	app.Get("/auth/signup/", h.SignupPage)
	app.Post("/auth/signup/", h.Signup)
	app.Get("/auth/login/", h.LoginPage)
	app.Post("/auth/login/", h.Login)
	app.Get("/auth/logout/", h.Logout)

	app.Get("/create/", auth.RequireAuth(), h.PostCreatePage)
	app.Post("/create/", auth.RequireAuth(), h.PostCreate)

	app.Get("/posts/:id/", h.PostDetail)
	app.Get("/posts/:id/edit/", auth.RequireAuth(), h.PostEditPage)
	app.Post("/posts/:id/edit/", auth.RequireAuth(), h.PostEdit)
	app.Post("/posts/:id/comment/", auth.RequireAuth(), h.AddComment)

	app.Get("/follow/", auth.RequireAuth(), h.FollowIndex)
	app.Get("/profile/:username/", h.Profile)
	app.Get("/profile/:username/follow/", auth.RequireAuth(), h.ProfileFollow)
	app.Get("/profile/:username/unfollow/", auth.RequireAuth(), h.ProfileUnfollow)

	app.Use(h.NotFound)
}
