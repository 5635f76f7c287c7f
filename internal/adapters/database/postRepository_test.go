package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plume/internal/core/apperr"
	"plume/internal/core/comment"
	"plume/internal/core/group"
	"plume/internal/core/post"
	postPort "plume/internal/ports/post"
)

func TestPostRepository_OrderingNewestFirstWithIDTieBreak(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	ctx := context.Background()

	author := createUser(t, db, "alice")

	early := at(t, "2024-01-01T10:00:00Z")
	late := at(t, "2024-01-02T10:00:00Z")

	// Two posts share the late timestamp so the id tie-break decides.
	p1 := &post.Post{Text: "first", AuthorID: author.ID, CreatedAt: early}
	p2 := &post.Post{Text: "second", AuthorID: author.ID, CreatedAt: late}
	p3 := &post.Post{Text: "third", AuthorID: author.ID, CreatedAt: late}
	for _, p := range []*post.Post{p1, p2, p3} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	posts, err := repo.ListPage(ctx, postPort.Filter{}, 0, 10)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "third", posts[0].Text)
	assert.Equal(t, "second", posts[1].Text)
	assert.Equal(t, "first", posts[2].Text)
}

func TestPostRepository_FilterScopes(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	g := &group.Group{Title: "Go", Slug: "go"}
	require.NoError(t, db.Create(g).Error)

	_, err := repo.Create(ctx, &post.Post{Text: "grouped", AuthorID: alice.ID, GroupID: &g.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &post.Post{Text: "loose", AuthorID: bob.ID})
	require.NoError(t, err)

	byGroup, err := repo.ListPage(ctx, postPort.Filter{GroupID: &g.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, byGroup, 1)
	assert.Equal(t, "grouped", byGroup[0].Text)
	require.NotNil(t, byGroup[0].Group)
	assert.Equal(t, "go", byGroup[0].Group.Slug)

	byAuthor, err := repo.ListPage(ctx, postPort.Filter{AuthorID: &bob.ID}, 0, 10)
	require.NoError(t, err)
	require.Len(t, byAuthor, 1)
	assert.Equal(t, "loose", byAuthor[0].Text)
	assert.Equal(t, "bob", byAuthor[0].Author.Username)

	// Non-nil empty author set selects nothing.
	none, err := repo.ListPage(ctx, postPort.Filter{AuthorIDs: []uint{}}, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	count, err := repo.Count(ctx, postPort.Filter{AuthorIDs: []uint{alice.ID, bob.ID}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestPostRepository_DeleteCascadesComments(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepositoryDatabase(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	p1, err := repo.Create(ctx, &post.Post{Text: "doomed", AuthorID: alice.ID})
	require.NoError(t, err)
	p2, err := repo.Create(ctx, &post.Post{Text: "survivor", AuthorID: alice.ID})
	require.NoError(t, err)

	require.NoError(t, db.Create(&comment.Comment{PostID: p1.ID, AuthorID: bob.ID, Text: "bye"}).Error)
	require.NoError(t, db.Create(&comment.Comment{PostID: p2.ID, AuthorID: bob.ID, Text: "stay"}).Error)

	require.NoError(t, repo.Delete(ctx, p1.ID))

	_, err = repo.FindByID(ctx, p1.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	var remaining []comment.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, p2.ID, remaining[0].PostID)
}

func TestPostRepository_DeleteMissingPostIsNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostRepositoryDatabase(db)

	assert.ErrorIs(t, repo.Delete(context.Background(), 12345), apperr.ErrNotFound)
}
