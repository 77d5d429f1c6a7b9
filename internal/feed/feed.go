package feed

import (
	"fmt"

	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/model"
	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/internal/user"
)

// Composer собирает страницы лент поверх хранилищ.
// Чтение без побочных эффектов - кеширование главной страницы живет уровнем выше.
type Composer struct {
	Posts    post.PostStorage
	Groups   group.GroupStorage
	Users    user.UserStorage
	Follows  follow.FollowStorage
	PageSize int
}

// Global - все посты без фильтра, доступна любому (в том числе анонимному) читателю.
func (c *Composer) Global(page int) (*Page, error) {
	page = NormalizePage(page)

	posts, total, err := c.Posts.ListAll(c.PageSize, offsetFor(page, c.PageSize))
	if err != nil {
		return nil, fmt.Errorf("could not compose global feed: %w", err)
	}

	return c.newPage(posts, total, page), nil
}

// ByGroup - посты группы по slug. Если группы нет - group.ErrNotFound.
func (c *Composer) ByGroup(slug string, page int) (*model.Group, *Page, error) {
	page = NormalizePage(page)

	grp, err := c.Groups.GetGroupBySlug(slug)
	if err != nil {
		return nil, nil, fmt.Errorf("could not compose group feed: %w", err)
	}

	posts, total, err := c.Posts.ListByGroup(grp.ID, c.PageSize, offsetFor(page, c.PageSize))
	if err != nil {
		return nil, nil, fmt.Errorf("could not compose group feed: %w", err)
	}

	return grp, c.newPage(posts, total, page), nil
}

// ByAuthor - посты автора по username плюс флаг "viewer подписан на автора".
// Для анонимного просмотра viewerID равен 0, флаг всегда false.
func (c *Composer) ByAuthor(viewerID uint, username string, page int) (*model.User, *Page, bool, error) {
	page = NormalizePage(page)

	author, err := c.Users.GetUserByUsername(username)
	if err != nil {
		return nil, nil, false, fmt.Errorf("could not compose author feed: %w", err)
	}

	posts, total, err := c.Posts.ListByAuthor(author.ID, c.PageSize, offsetFor(page, c.PageSize))
	if err != nil {
		return nil, nil, false, fmt.Errorf("could not compose author feed: %w", err)
	}

	following := false
	if viewerID != 0 {
		following, err = c.Follows.IsFollowing(viewerID, username)
		if err != nil {
			return nil, nil, false, fmt.Errorf("could not resolve follow state: %w", err)
		}
	}

	return author, c.newPage(posts, total, page), following, nil
}

// Subscriptions - посты авторов, на которых подписан viewer.
// Авторизацию проверяет маршрутизатор, здесь viewer уже аутентифицирован.
func (c *Composer) Subscriptions(viewerID uint, page int) (*Page, error) {
	page = NormalizePage(page)

	authorIDs, err := c.Follows.ListFollowing(viewerID)
	if err != nil {
		return nil, fmt.Errorf("could not compose subscriptions feed: %w", err)
	}

	ids := make([]string, 0, len(authorIDs))
	for _, id := range authorIDs {
		ids = append(ids, fmt.Sprint(id))
	}

	posts, total, err := c.Posts.ListByAuthors(ids, c.PageSize, offsetFor(page, c.PageSize))
	if err != nil {
		return nil, fmt.Errorf("could not compose subscriptions feed: %w", err)
	}

	return c.newPage(posts, total, page), nil
}

func (c *Composer) newPage(posts []*model.Post, total, page int) *Page {
	return &Page{
		Posts:      posts,
		Number:     page,
		TotalPages: totalPages(total, c.PageSize),
		TotalCount: total,
	}
}
