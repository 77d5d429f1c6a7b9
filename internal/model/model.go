package model

import "time"

// Модели для транспортного слоя (к БД привязаны модели из пакета models).

type User struct {
	ID       string
	Username string
	Email    string
}

type Group struct {
	ID          string
	Title       string
	Slug        string
	Description string
}

type Post struct {
	ID        string
	Text      string
	AuthorID  string
	GroupID   *string
	Image     string
	CreatedAt time.Time
}

type Comment struct {
	ID        string
	PostID    string
	AuthorID  string
	Text      string
	CreatedAt time.Time
}
