package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"plume/internal/core/apperr"
	"plume/internal/core/comment"
	"plume/internal/core/post"
	postPort "plume/internal/ports/post"
)

type PostRepositoryDatabase struct {
	db *gorm.DB
}

func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{db: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := repo.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint) (*post.Post, error) {
	var p post.Post
	err := repo.db.WithContext(ctx).Preload("Author").Preload("Group").First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	// Select the mutable columns explicitly so a cleared group reference is
	// written as NULL instead of being skipped as a zero value.
	err := repo.db.WithContext(ctx).Model(p).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     p.Text,
			"group_id": p.GroupID,
			"image":    p.Image,
		}).Error
	if err != nil {
		return nil, err
	}
	return repo.FindByID(ctx, p.ID)
}

// Delete removes the post together with its comments in one transaction.
func (repo *PostRepositoryDatabase) Delete(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&comment.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&post.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
}

func scoped(db *gorm.DB, f postPort.Filter) *gorm.DB {
	if f.GroupID != nil {
		db = db.Where("group_id = ?", *f.GroupID)
	}
	if f.AuthorID != nil {
		db = db.Where("author_id = ?", *f.AuthorID)
	}
	if f.AuthorIDs != nil {
		if len(f.AuthorIDs) == 0 {
			// Following nobody: an impossible predicate keeps the query shape
			// uniform and the result empty.
			db = db.Where("1 = 0")
		} else {
			db = db.Where("author_id IN ?", f.AuthorIDs)
		}
	}
	return db
}

func (repo *PostRepositoryDatabase) ListPage(ctx context.Context, f postPort.Filter, offset, limit int) ([]*post.Post, error) {
	var posts []*post.Post
	err := scoped(repo.db.WithContext(ctx), f).
		Preload("Author").Preload("Group").
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (repo *PostRepositoryDatabase) Count(ctx context.Context, f postPort.Filter) (int64, error) {
	var count int64
	if err := scoped(repo.db.WithContext(ctx).Model(&post.Post{}), f).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
