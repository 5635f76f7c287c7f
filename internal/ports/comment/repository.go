package comment

import (
	"context"
	"time"

	"plume/internal/core/comment"
	userPort "plume/internal/ports/user"
)

type CommentRepository interface {
	Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error)
	// ListByPostID returns the post's comments newest first.
	ListByPostID(ctx context.Context, postID uint) ([]*comment.Comment, error)
}

type CommentDTO struct {
	ID        uint             `json:"id"`
	PostID    uint             `json:"post_id"`
	Author    userPort.UserDTO `json:"author"`
	Text      string           `json:"text"`
	CreatedAt time.Time        `json:"created_at"`
}

func FromEntity(c *comment.Comment) CommentDTO {
	return CommentDTO{
		ID:     c.ID,
		PostID: c.PostID,
		Author: userPort.UserDTO{
			ID:       c.Author.ID,
			Username: c.Author.Username,
		},
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
