package followapp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"plume/internal/adapters/database"
	"plume/internal/config"
	"plume/internal/core/apperr"
	"plume/internal/core/follow"
	"plume/internal/core/user"
)

func newService(t *testing.T) (*FollowService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	svc := NewFollowService(
		database.NewFollowRepositoryDatabase(db),
		database.NewUserRepositoryDatabase(db),
		zap.NewNop(),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *user.User {
	t.Helper()
	u := &user.User{Username: username, Password: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestFollowService_SelfFollowFailsValidation(t *testing.T) {
	svc, db := newService(t)
	alice := seedUser(t, db, "alice")

	err := svc.Follow(context.Background(), alice.ID, "alice")
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))

	var count int64
	require.NoError(t, db.Model(&follow.Follow{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestFollowService_DoubleFollowLeavesOneEdge(t *testing.T) {
	svc, db := newService(t)
	alice := seedUser(t, db, "alice")
	seedUser(t, db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, alice.ID, "bob"))
	require.NoError(t, svc.Follow(ctx, alice.ID, "bob"))

	var count int64
	require.NoError(t, db.Model(&follow.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowService_UnknownTargetIsNotFound(t *testing.T) {
	svc, db := newService(t)
	alice := seedUser(t, db, "alice")

	err := svc.Follow(context.Background(), alice.ID, "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestFollowService_UnfollowIsIdempotent(t *testing.T) {
	svc, db := newService(t)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	ctx := context.Background()

	require.NoError(t, svc.Follow(ctx, alice.ID, "bob"))
	require.NoError(t, svc.Unfollow(ctx, alice.ID, "bob"))
	// Unfollowing again is a no-op, not an error.
	require.NoError(t, svc.Unfollow(ctx, alice.ID, "bob"))

	ok, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
