package followapp

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"plume/internal/core/apperr"
	followEntity "plume/internal/core/follow"
	followPort "plume/internal/ports/follow"
	userPort "plume/internal/ports/user"
)

type FollowService struct {
	FollowRepository followPort.FollowRepository
	UserRepository   userPort.UserRepository
	Logger           *zap.Logger
}

func NewFollowService(followRepo followPort.FollowRepository, userRepo userPort.UserRepository, logger *zap.Logger) *FollowService {
	return &FollowService{
		FollowRepository: followRepo,
		UserRepository:   userRepo,
		Logger:           logger,
	}
}

// Follow adds the edge user → target. Following yourself is a
// ValidationError; following someone twice leaves exactly one edge.
func (s *FollowService) Follow(ctx context.Context, userID uint, targetUsername string) error {
	target, err := s.UserRepository.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if target.ID == userID {
		return apperr.Invalid("author", "cannot follow yourself")
	}

	err = s.FollowRepository.Upsert(ctx, &followEntity.Follow{
		UserID:   userID,
		AuthorID: target.ID,
	})
	if err != nil {
		return fmt.Errorf("follow: %w", err)
	}
	s.Logger.Info("follow edge upserted",
		zap.Uint("userID", userID),
		zap.Uint("authorID", target.ID),
	)
	return nil
}

// Unfollow removes the edge if present; an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, targetUsername string) error {
	target, err := s.UserRepository.FindByUsername(ctx, targetUsername)
	if err != nil {
		return err
	}
	if err := s.FollowRepository.Delete(ctx, userID, target.ID); err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint) (bool, error) {
	return s.FollowRepository.IsFollowing(ctx, userID, authorID)
}

func (s *FollowService) FollowedAuthorIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.FollowRepository.FollowedAuthorIDs(ctx, userID)
}
