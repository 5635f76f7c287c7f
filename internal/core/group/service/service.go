package groupapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/gosimple/slug"

	"plume/internal/core/apperr"
	groupEntity "plume/internal/core/group"
	groupPort "plume/internal/ports/group"
)

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

// CreateGroup derives the slug from the title. Groups are immutable once
// created; there is no update path.
func (s *GroupService) CreateGroup(ctx context.Context, title, description string) (*groupPort.GroupDTO, error) {
	if title == "" {
		return nil, apperr.Invalid("title", "must not be empty")
	}
	groupSlug := slug.Make(title)
	if groupSlug == "" {
		return nil, apperr.Invalid("title", "cannot be turned into a slug")
	}

	if _, err := s.GroupRepository.FindBySlug(ctx, groupSlug); err == nil {
		return nil, apperr.Invalid("title", "a group with this slug already exists")
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("check slug: %w", err)
	}

	g, err := s.GroupRepository.Create(ctx, &groupEntity.Group{
		Title:       title,
		Slug:        groupSlug,
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("create group: %w", err)
	}
	return toDTO(g), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, groupSlug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, groupSlug)
	if err != nil {
		return nil, err
	}
	return toDTO(g), nil
}

func (s *GroupService) ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, toDTO(g))
	}
	return dtos, nil
}

// DeleteGroup removes the group; its posts survive with the group reference
// cleared (the repository handles both in one transaction).
func (s *GroupService) DeleteGroup(ctx context.Context, groupSlug string) error {
	g, err := s.GroupRepository.FindBySlug(ctx, groupSlug)
	if err != nil {
		return err
	}
	return s.GroupRepository.Delete(ctx, g.ID)
}

func toDTO(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:          g.ID,
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
