package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plume/internal/core/apperr"
	"plume/internal/core/group"
	"plume/internal/core/post"
)

func TestGroupRepository_DeleteDetachesPosts(t *testing.T) {
	db := openTestDB(t)
	groups := NewGroupRepositoryDatabase(db)
	posts := NewPostRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	g, err := groups.Create(ctx, &group.Group{Title: "Go", Slug: "go"})
	require.NoError(t, err)

	p, err := posts.Create(ctx, &post.Post{Text: "kept", AuthorID: alice.ID, GroupID: &g.ID})
	require.NoError(t, err)

	require.NoError(t, groups.Delete(ctx, g.ID))

	_, err = groups.FindBySlug(ctx, "go")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// The post survives with its group reference cleared.
	kept, err := posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.GroupID)
	assert.Nil(t, kept.Group)
	assert.Equal(t, "kept", kept.Text)
}

func TestGroupRepository_SlugUniqueness(t *testing.T) {
	db := openTestDB(t)
	groups := NewGroupRepositoryDatabase(db)
	ctx := context.Background()

	_, err := groups.Create(ctx, &group.Group{Title: "Go", Slug: "go"})
	require.NoError(t, err)
	_, err = groups.Create(ctx, &group.Group{Title: "Go again", Slug: "go"})
	assert.Error(t, err)
}

func TestGroupRepository_FindBySlugMissing(t *testing.T) {
	db := openTestDB(t)
	groups := NewGroupRepositoryDatabase(db)

	_, err := groups.FindBySlug(context.Background(), "nope")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
