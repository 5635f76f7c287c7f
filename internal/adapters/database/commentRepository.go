package database

import (
	"context"

	"gorm.io/gorm"

	"plume/internal/core/comment"
)

type CommentRepositoryDatabase struct {
	db *gorm.DB
}

func NewCommentRepositoryDatabase(db *gorm.DB) *CommentRepositoryDatabase {
	return &CommentRepositoryDatabase{db: db}
}

func (repo *CommentRepositoryDatabase) Create(ctx context.Context, c *comment.Comment) (*comment.Comment, error) {
	if err := repo.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	var created comment.Comment
	if err := repo.db.WithContext(ctx).Preload("Author").First(&created, c.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (repo *CommentRepositoryDatabase) ListByPostID(ctx context.Context, postID uint) ([]*comment.Comment, error) {
	var comments []*comment.Comment
	err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
