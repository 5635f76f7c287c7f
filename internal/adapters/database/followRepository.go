package database

import (
	"context"

	"gorm.io/gorm"

	"plume/internal/core/follow"
)

type FollowRepositoryDatabase struct {
	db *gorm.DB
}

func NewFollowRepositoryDatabase(db *gorm.DB) *FollowRepositoryDatabase {
	return &FollowRepositoryDatabase{db: db}
}

// Upsert inserts the edge unless the (user, author) pair already exists.
// FirstOrCreate rides on the unique index, so a concurrent duplicate insert
// is rejected by the database rather than producing a second edge.
func (repo *FollowRepositoryDatabase) Upsert(ctx context.Context, f *follow.Follow) error {
	return repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", f.UserID, f.AuthorID).
		FirstOrCreate(f).Error
}

func (repo *FollowRepositoryDatabase) Delete(ctx context.Context, userID, authorID uint) error {
	return repo.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&follow.Follow{}).Error
}

func (repo *FollowRepositoryDatabase) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&follow.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FollowRepositoryDatabase) FollowedAuthorIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := repo.db.WithContext(ctx).Model(&follow.Follow{}).
		Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
