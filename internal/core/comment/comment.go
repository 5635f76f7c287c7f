package comment

import (
	"time"

	"plume/internal/core/post"
	"plume/internal/core/user"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	PostID    uint      `gorm:"not null;index"`
	Post      post.Post `gorm:"foreignKey:PostID"`
	AuthorID  uint      `gorm:"not null;index"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	Text      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
