package commentapp

import (
	"context"
	"fmt"

	"plume/internal/core/apperr"
	commentEntity "plume/internal/core/comment"
	commentPort "plume/internal/ports/comment"
	postPort "plume/internal/ports/post"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
	}
}

// AddComment attaches a comment to an existing post.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID uint, text string) (*commentPort.CommentDTO, error) {
	if text == "" {
		return nil, apperr.Invalid("text", "must not be empty")
	}
	if _, err := s.PostRepository.FindByID(ctx, postID); err != nil {
		return nil, err
	}

	c, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	dto := commentPort.FromEntity(c)
	return &dto, nil
}
