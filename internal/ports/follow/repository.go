package follow

import (
	"context"

	"plume/internal/core/follow"
)

type FollowRepository interface {
	// Upsert inserts the edge if it is not already present. Inserting an
	// existing (user, author) pair is a no-op, not an error.
	Upsert(ctx context.Context, f *follow.Follow) error
	// Delete removes the edge if present; absent edges are a no-op.
	Delete(ctx context.Context, userID, authorID uint) error
	IsFollowing(ctx context.Context, userID, authorID uint) (bool, error)
	// FollowedAuthorIDs returns the ids of every author the user follows.
	FollowedAuthorIDs(ctx context.Context, userID uint) ([]uint, error)
}

type FollowDTO struct {
	UserID   uint `json:"user_id"`
	AuthorID uint `json:"author_id"`
}
