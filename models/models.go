package models

import "github.com/jinzhu/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"unique"`
	Email    string `gorm:"unique"`
	Password string
	Posts    []Post    `gorm:"foreignkey:UserID"`
	Comments []Comment `gorm:"foreignkey:UserID"`
}

type Group struct {
	gorm.Model
	Title       string
	Slug        string `gorm:"unique"`
	Description string
	Posts       []Post `gorm:"foreignkey:GroupID"`
}

type Post struct {
	gorm.Model
	Text     string
	UserID   uint
	GroupID  *uint
	Image    string
	Comments []Comment `gorm:"foreignkey:PostID"`
}

type Comment struct {
	gorm.Model
	Text   string
	PostID uint
	UserID uint
}

// Follow - направленное ребро "user подписан на author".
type Follow struct {
	gorm.Model
	UserID   uint `gorm:"unique_index:idx_user_author"`
	AuthorID uint `gorm:"unique_index:idx_user_author"`
}
