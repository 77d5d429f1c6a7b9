package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/VitaminP8/lenta/internal/auth"
	"github.com/VitaminP8/lenta/internal/config"
	"github.com/VitaminP8/lenta/internal/feed"
	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/internal/user"
)

type postForm struct {
	Text  string `form:"text" validate:"required"`
	Group string `form:"group"`
}

// Index - главная страница, пагинированная лента всех постов.
// Единственный маршрут за кешем: в окно TTL все читатели получают
// одни и те же байты, свежесть постов приносится в жертву осознанно.
func (h *Handler) Index(c *fiber.Ctx) error {
	// Ключ кеша строится по нормализованному номеру, иначе "/", "/?page=0"
	// и "/?page=-5" кешировали бы одну и ту же страницу под разными ключами.
	page := feed.NormalizePage(c.QueryInt("page", 1))

	data, err := h.Cache.GetOrRender(c.UserContext(), fmt.Sprintf("index_page:%d", page), config.IndexCacheTTL, func() ([]byte, error) {
		feedPage, err := h.Feed.Global(page)
		if err != nil {
			return nil, err
		}
		return render("index.html", fiber.Map{"Page": feedPage})
	})
	if err != nil {
		return err
	}

	return sendHTML(c, fiber.StatusOK, data)
}

// GroupPosts - лента одной группы по slug.
func (h *Handler) GroupPosts(c *fiber.Ctx) error {
	grp, feedPage, err := h.Feed.ByGroup(c.Params("slug"), c.QueryInt("page", 1))
	if errors.Is(err, group.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	return renderHTML(c, fiber.StatusOK, "group_list.html", fiber.Map{
		"Group": grp,
		"Page":  feedPage,
	})
}

// Profile - лента автора плюс флаг "текущий viewer подписан на автора".
func (h *Handler) Profile(c *fiber.Ctx) error {
	viewerID, _ := auth.UserID(c)

	author, feedPage, following, err := h.Feed.ByAuthor(viewerID, c.Params("username"), c.QueryInt("page", 1))
	if errors.Is(err, user.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	return renderHTML(c, fiber.StatusOK, "profile.html", fiber.Map{
		"Author":    author,
		"Page":      feedPage,
		"Following": following,
	})
}

// PostDetail - страница поста с комментариями и формой комментария.
func (h *Handler) PostDetail(c *fiber.Ctx) error {
	return h.renderDetail(c, c.Params("id"), "", fiber.StatusOK)
}

func (h *Handler) renderDetail(c *fiber.Ctx, id, errMsg string, status int) error {
	p, err := h.Posts.GetPostByID(id)
	if errors.Is(err, post.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	comments, err := h.Comments.GetComments(id)
	if err != nil {
		return err
	}

	return renderHTML(c, status, "post_detail.html", fiber.Map{
		"Post":     p,
		"Comments": comments,
		"Error":    errMsg,
	})
}

func (h *Handler) PostCreatePage(c *fiber.Ctx) error {
	return h.renderPostForm(c, nil, "", fiber.StatusOK)
}

// PostCreate создает пост от имени текущего viewer и уводит его на собственный профиль.
func (h *Handler) PostCreate(c *fiber.Ctx) error {
	var form postForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderPostForm(c, nil, "не удалось прочитать форму", fiber.StatusBadRequest)
	}
	if err := validate.Struct(&form); err != nil {
		return h.renderPostForm(c, nil, "текст поста обязателен", fiber.StatusBadRequest)
	}

	image, err := h.saveImage(c)
	if err != nil {
		return h.renderPostForm(c, nil, "не удалось сохранить картинку", fiber.StatusBadRequest)
	}

	var groupID *string
	if form.Group != "" {
		groupID = &form.Group
	}

	if _, err := h.Posts.CreatePost(auth.Context(c), form.Text, groupID, image); err != nil {
		return err
	}

	viewerID, _ := auth.UserID(c)
	viewer, err := h.Users.GetUserByID(viewerID)
	if err != nil {
		return err
	}

	return c.Redirect("/profile/"+viewer.Username+"/", fiber.StatusFound)
}

func (h *Handler) PostEditPage(c *fiber.Ctx) error {
	id := c.Params("id")

	p, err := h.Posts.GetPostByID(id)
	if errors.Is(err, post.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	viewerID, _ := auth.UserID(c)
	if p.AuthorID != fmt.Sprint(viewerID) {
		// не автор - молча уводим на страницу поста
		return c.Redirect("/posts/"+id+"/", fiber.StatusFound)
	}

	return h.renderPostForm(c, p, "", fiber.StatusOK)
}

// PostEdit применяет правки поста. Попытка не-автора не меняет пост
// и выглядит для клиента так же, как успех: редирект на страницу поста.
func (h *Handler) PostEdit(c *fiber.Ctx) error {
	id := c.Params("id")

	var form postForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderPostForm(c, nil, "не удалось прочитать форму", fiber.StatusBadRequest)
	}
	if err := validate.Struct(&form); err != nil {
		p, getErr := h.Posts.GetPostByID(id)
		if getErr != nil {
			return h.NotFound(c)
		}
		return h.renderPostForm(c, p, "текст поста обязателен", fiber.StatusBadRequest)
	}

	image, err := h.saveImage(c)
	if err != nil {
		return h.renderPostForm(c, nil, "не удалось сохранить картинку", fiber.StatusBadRequest)
	}

	var groupID *string
	if form.Group != "" {
		groupID = &form.Group
	}

	_, err = h.Posts.UpdatePost(auth.Context(c), id, form.Text, groupID, image)
	if errors.Is(err, post.ErrNotFound) {
		return h.NotFound(c)
	}
	if errors.Is(err, post.ErrForbidden) {
		return c.Redirect("/posts/"+id+"/", fiber.StatusFound)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/posts/"+id+"/", fiber.StatusFound)
}

type commentForm struct {
	Text string `form:"text" validate:"required,max=2000"`
}

// AddComment добавляет комментарий и возвращает на страницу поста.
// Невалидная форма перерисовывает страницу поста с ошибкой, ничего не меняя.
func (h *Handler) AddComment(c *fiber.Ctx) error {
	id := c.Params("id")

	var form commentForm
	if err := c.BodyParser(&form); err != nil {
		return h.renderDetail(c, id, "не удалось прочитать форму", fiber.StatusBadRequest)
	}
	if err := validate.Struct(&form); err != nil {
		return h.renderDetail(c, id, "текст комментария обязателен", fiber.StatusBadRequest)
	}

	_, err := h.Comments.CreateComment(auth.Context(c), id, form.Text)
	if errors.Is(err, post.ErrNotFound) {
		return h.NotFound(c)
	}
	if err != nil {
		return err
	}

	return c.Redirect("/posts/"+id+"/", fiber.StatusFound)
}

func (h *Handler) renderPostForm(c *fiber.Ctx, p interface{}, errMsg string, status int) error {
	groups, err := h.Groups.ListGroups()
	if err != nil {
		return err
	}

	return renderHTML(c, status, "create_post.html", fiber.Map{
		"Post":   p,
		"Groups": groups,
		"Error":  errMsg,
	})
}

// saveImage сохраняет приложенную картинку, если она есть.
// Отсутствие файла - не ошибка: картинка опциональна.
func (h *Handler) saveImage(c *fiber.Ctx) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("could not open upload: %w", err)
	}
	defer src.Close()

	return h.Media.Save(file.Filename, src)
}
