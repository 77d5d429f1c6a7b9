package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/VitaminP8/lenta/internal/comment"
	"github.com/VitaminP8/lenta/internal/config"
	"github.com/VitaminP8/lenta/internal/feed"
	"github.com/VitaminP8/lenta/internal/follow"
	"github.com/VitaminP8/lenta/internal/group"
	"github.com/VitaminP8/lenta/internal/handler"
	"github.com/VitaminP8/lenta/internal/media"
	"github.com/VitaminP8/lenta/internal/pagecache"
	"github.com/VitaminP8/lenta/internal/post"
	"github.com/VitaminP8/lenta/internal/storage/memory"
	"github.com/VitaminP8/lenta/internal/storage/postgres"
	"github.com/VitaminP8/lenta/internal/user"
	"github.com/VitaminP8/lenta/models"
)

func main() {
	storageType := flag.String("storage", "memory", "Тип хранилища: memory или postgres")
	cacheType := flag.String("cache", "memory", "Тип кеша страниц: memory или redis")
	addr := flag.String("addr", ":8080", "Адрес HTTP сервера")
	flag.Parse()

	// загружаем .env из нашего config.go
	config.LoadEnv()

	var postStore post.PostStorage
	var commentStore comment.CommentStorage
	var userStore user.UserStorage
	var groupStore group.GroupStorage
	var followStore follow.FollowStorage

	switch *storageType {
	case "postgres":
		if err := postgres.InitDB(); err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		err := postgres.DB.AutoMigrate(&models.User{}, &models.Group{}, &models.Post{}, &models.Comment{}, &models.Follow{}).Error
		if err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		log.Println("Используется PostgreSQL хранилище")
		postStore = postgres.NewPostPostgresStorage()
		commentStore = postgres.NewCommentPostgresStorage()
		userStore = postgres.NewUserPostgresStorage()
		groupStore = postgres.NewGroupPostgresStorage()
		followStore = postgres.NewFollowPostgresStorage()

	case "memory":
		log.Println("Используется in-memory хранилище")
		postStore = memory.NewPostMemoryStorage()
		commentStore = memory.NewCommentMemoryStorage(postStore)
		userStore = memory.NewUserMemoryStorage()
		groupStore = memory.NewGroupMemoryStorage()
		followStore = memory.NewFollowMemoryStorage(userStore)

		// in-memory хранилище поднимается пустым, а публичного маршрута
		// создания групп нет - заводим стартовые группы здесь
		seedGroups(groupStore)

	default:
		log.Fatalf("неизвестный тип хранилища: %s", *storageType)
	}

	var cache pagecache.Cache
	switch *cacheType {
	case "redis":
		redisCache, err := pagecache.NewRedisCache(config.GetEnv("REDIS_ADDR"), config.GetEnvDefault("REDIS_PASSWORD", ""))
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisCache.Close()
		log.Println("Используется Redis кеш страниц")
		cache = redisCache

	case "memory":
		log.Println("Используется in-memory кеш страниц")
		cache = pagecache.NewMemoryCache()

	default:
		log.Fatalf("неизвестный тип кеша: %s", *cacheType)
	}

	mediaDir := config.GetEnvDefault("MEDIA_DIR", "media")
	mediaStore, err := media.NewDiskStore(mediaDir)
	if err != nil {
		log.Fatalf("failed to init media store: %v", err)
	}

	composer := &feed.Composer{
		Posts:    postStore,
		Groups:   groupStore,
		Users:    userStore,
		Follows:  followStore,
		PageSize: config.PostsPerPage,
	}

	h := &handler.Handler{
		Users:    userStore,
		Groups:   groupStore,
		Posts:    postStore,
		Comments: commentStore,
		Follows:  followStore,
		Feed:     composer,
		Cache:    cache,
		Media:    mediaStore,
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Static("/media", mediaDir)

	h.Register(app)

	// запуск HTTP сервера в отдельной горутине, чтобы дождаться сигнала завершения
	go func() {
		log.Printf("Сервер запущен на http://localhost%s/", *addr)
		if err := app.Listen(*addr); err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	// Ожидание SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // ждет сигнал

	log.Println("Завершение...")

	if *storageType == "postgres" {
		postgres.CloseDB()
	}

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Ошибка при завершении сервера: %v", err)
	}

	log.Println("Сервер остановлен корректно")
}

func seedGroups(groupStore group.GroupStorage) {
	seeds := []struct {
		title, slug, description string
	}{
		{"Общее", "general", "Посты без определенной темы"},
		{"Технологии", "tech", "Про код, железо и всё вокруг"},
	}

	for _, s := range seeds {
		if _, err := groupStore.CreateGroup(s.title, s.slug, s.description); err != nil {
			log.Printf("не удалось создать группу %s: %v", s.slug, err)
		}
	}
}
