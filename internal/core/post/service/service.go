package postapp

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"plume/internal/core/apperr"
	postEntity "plume/internal/core/post"
	commentPort "plume/internal/ports/comment"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	storagePort "plume/internal/ports/storage"
)

type PostService struct {
	PostRepository    postPort.PostRepository
	GroupRepository   groupPort.GroupRepository
	CommentRepository commentPort.CommentRepository
	Images            storagePort.ImageStore
	Logger            *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	commentRepo commentPort.CommentRepository,
	images storagePort.ImageStore,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:    postRepo,
		GroupRepository:   groupRepo,
		CommentRepository: commentRepo,
		Images:            images,
		Logger:            logger,
	}
}

// CreatePost stores a new post. groupSlug may be empty; a non-empty slug
// naming an unknown group is a ValidationError rather than NotFound because
// it arrives as form input.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, text, groupSlug string, image *postPort.Upload) (*postPort.PostDTO, error) {
	if text == "" {
		return nil, apperr.Invalid("text", "must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Text:     text,
		AuthorID: authorID,
		GroupID:  groupID,
	}
	if image != nil {
		stored, err := s.Images.Save(ctx, image.Name, image.Data)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		p.Image = stored
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.Logger.Info("post created",
		zap.Uint("postID", created.ID),
		zap.Uint("authorID", authorID),
	)

	dto := postPort.FromEntity(created)
	return &dto, nil
}

// EditPost updates text and group. Only the original author may edit.
func (s *PostService) EditPost(ctx context.Context, postID, editorID uint, text, groupSlug string) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != editorID {
		return nil, apperr.ErrForbidden
	}
	if text == "" {
		return nil, apperr.Invalid("text", "must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, groupSlug)
	if err != nil {
		return nil, err
	}

	p.Text = text
	p.GroupID = groupID
	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	dto := postPort.FromEntity(updated)
	return &dto, nil
}

// DeletePost removes the post and its comments. Only the author may delete.
func (s *PostService) DeletePost(ctx context.Context, postID, actorID uint) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if p.AuthorID != actorID {
		return apperr.ErrForbidden
	}
	if err := s.PostRepository.Delete(ctx, postID); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.Logger.Info("post deleted", zap.Uint("postID", postID), zap.Uint("actorID", actorID))
	return nil
}

// PostDetail returns the post with its comments, newest comment first.
func (s *PostService) PostDetail(ctx context.Context, postID uint) (*postPort.PostDTO, []commentPort.CommentDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.CommentRepository.ListByPostID(ctx, postID)
	if err != nil {
		return nil, nil, fmt.Errorf("list comments: %w", err)
	}

	dto := postPort.FromEntity(p)
	commentDTOs := make([]commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		commentDTOs = append(commentDTOs, commentPort.FromEntity(c))
	}
	return &dto, commentDTOs, nil
}

func (s *PostService) resolveGroup(ctx context.Context, groupSlug string) (*uint, error) {
	if groupSlug == "" {
		return nil, nil
	}
	g, err := s.GroupRepository.FindBySlug(ctx, groupSlug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.Invalid("group", "unknown group")
		}
		return nil, fmt.Errorf("resolve group: %w", err)
	}
	return &g.ID, nil
}
