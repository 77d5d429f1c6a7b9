package handler

import (
	"github.com/go-playground/validator/v10"

	"github.com/VitaminP8/lenta/internal/comment"
	"github.com/VitaminP8/lenta/internal/feed"
	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/media"
	"github.com/VitaminP8/lenta/internal/pagecache"
	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/internal/user"
)

// Handler служит корневой точкой для всех HTTP-обработчиков.
// Здесь внедряются зависимости: хранилища, лента, кеш, медиа.
type Handler struct {
	Users    user.UserStorage
	Groups   group.GroupStorage
	Posts    post.PostStorage
	Comments comment.CommentStorage
	Follows  follow.FollowStorage
	Feed     *feed.Composer
	Cache    pagecache.Cache
	Media    media.Store
}

var validate = validator.New()
