package follow

import (
	"time"

	"plume/internal/core/user"
)

// Follow is a directed edge: UserID follows AuthorID. The unique index keeps
// the edge set de-duplicated and the check constraint bans self-follows, so
// both invariants hold for every write path, not just the HTTP handlers.
type Follow struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follows_user_author;check:chk_no_self_follow,user_id <> author_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follows_user_author;index"`
	User      user.User `gorm:"foreignKey:UserID"`
	Author    user.User `gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
