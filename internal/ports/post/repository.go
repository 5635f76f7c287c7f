package post

import (
	"context"
	"time"

	"plume/internal/core/post"
	groupPort "plume/internal/ports/group"
	userPort "plume/internal/ports/user"
)

// Filter narrows a post listing to one scope. Zero value means all posts.
// AuthorIDs is only consulted when non-nil, so an empty non-nil slice selects
// nothing (a requester following nobody has an empty feed).
type Filter struct {
	GroupID   *uint
	AuthorID  *uint
	AuthorIDs []uint
}

type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	// Delete removes the post and its comments in the same transaction.
	Delete(ctx context.Context, id uint) error
	// ListPage returns posts matching f ordered newest first, ties broken by
	// descending id, sliced by offset/limit. Author and Group are preloaded.
	ListPage(ctx context.Context, f Filter, offset, limit int) ([]*post.Post, error)
	Count(ctx context.Context, f Filter) (int64, error)
}

// Upload carries an image attached to a post create request.
type Upload struct {
	Name string
	Data []byte
}

type PostDTO struct {
	ID        uint                `json:"id"`
	Text      string              `json:"text"`
	Author    userPort.UserDTO    `json:"author"`
	Group     *groupPort.GroupDTO `json:"group,omitempty"`
	Image     string              `json:"image,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// FromEntity maps a stored post (with preloaded associations) to its DTO.
func FromEntity(p *post.Post) PostDTO {
	dto := PostDTO{
		ID:   p.ID,
		Text: p.Text,
		Author: userPort.UserDTO{
			ID:       p.Author.ID,
			Username: p.Author.Username,
		},
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
	}
	if p.Group != nil {
		dto.Group = &groupPort.GroupDTO{
			ID:          p.Group.ID,
			Title:       p.Group.Title,
			Slug:        p.Group.Slug,
			Description: p.Group.Description,
		}
	}
	return dto
}
