package post

import (
	"time"

	"plume/internal/core/group"
	"plume/internal/core/user"
)

// Post is the central entity. GroupID is nullable: deleting a group detaches
// its posts instead of removing them. Image holds the stored filename of an
// uploaded picture, empty when the post has none.
type Post struct {
	ID        uint         `gorm:"primaryKey;autoIncrement"`
	Text      string       `gorm:"type:text;not null"`
	AuthorID  uint         `gorm:"not null;index"`
	Author    user.User    `gorm:"foreignKey:AuthorID"`
	GroupID   *uint        `gorm:"index"`
	Group     *group.Group `gorm:"foreignKey:GroupID"`
	Image     string       `gorm:"size:255"`
	CreatedAt time.Time    `gorm:"autoCreateTime;index"`
}
