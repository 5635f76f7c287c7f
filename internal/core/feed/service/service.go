package feedapp

import (
	"context"
	"fmt"

	"plume/internal/core/apperr"
	feedPort "plume/internal/ports/feed"
	followPort "plume/internal/ports/follow"
	groupPort "plume/internal/ports/group"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"
)

// PageSize is the fixed number of posts per feed page.
const PageSize = 10

// FeedService assembles ordered, paginated post listings for the four feed
// scopes. Every call reconstructs the page from the store; the only caching
// sits in front of the global index, outside this service.
type FeedService struct {
	PostRepository   postPort.PostRepository
	GroupRepository  groupPort.GroupRepository
	UserRepository   userPort.UserRepository
	FollowRepository followPort.FollowRepository
}

func NewFeedService(
	postRepo postPort.PostRepository,
	groupRepo groupPort.GroupRepository,
	userRepo userPort.UserRepository,
	followRepo followPort.FollowRepository,
) *FeedService {
	return &FeedService{
		PostRepository:   postRepo,
		GroupRepository:  groupRepo,
		UserRepository:   userRepo,
		FollowRepository: followRepo,
	}
}

// Index is the global scope: all posts, newest first.
func (s *FeedService) Index(ctx context.Context, page int) (*feedPort.Page, error) {
	return s.assemble(ctx, postPort.Filter{}, page)
}

// GroupFeed lists the posts of one group. Unknown slugs are NotFound.
func (s *FeedService) GroupFeed(ctx context.Context, slug string, page int) (*feedPort.GroupPage, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	p, err := s.assemble(ctx, postPort.Filter{GroupID: &g.ID}, page)
	if err != nil {
		return nil, err
	}
	return &feedPort.GroupPage{
		Group: groupPort.GroupDTO{
			ID:          g.ID,
			Title:       g.Title,
			Slug:        g.Slug,
			Description: g.Description,
		},
		Page: *p,
	}, nil
}

// ProfileFeed lists one author's posts. requesterID is zero for anonymous
// readers; Following reports whether the requester follows the author.
func (s *FeedService) ProfileFeed(ctx context.Context, username string, requesterID uint, page int) (*feedPort.ProfilePage, error) {
	author, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	p, err := s.assemble(ctx, postPort.Filter{AuthorID: &author.ID}, page)
	if err != nil {
		return nil, err
	}

	following := false
	if requesterID != 0 && requesterID != author.ID {
		following, err = s.FollowRepository.IsFollowing(ctx, requesterID, author.ID)
		if err != nil {
			return nil, fmt.Errorf("check following: %w", err)
		}
	}
	return &feedPort.ProfilePage{
		Author:    author.Username,
		Following: following,
		Page:      *p,
	}, nil
}

// FollowingFeed lists posts by authors the requester follows. Anonymous
// requesters cannot reach this scope.
func (s *FeedService) FollowingFeed(ctx context.Context, requesterID uint, page int) (*feedPort.Page, error) {
	if requesterID == 0 {
		return nil, apperr.ErrUnauthenticated
	}
	authorIDs, err := s.FollowRepository.FollowedAuthorIDs(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("followed authors: %w", err)
	}
	if authorIDs == nil {
		authorIDs = []uint{}
	}
	return s.assemble(ctx, postPort.Filter{AuthorIDs: authorIDs}, page)
}

// assemble counts the scope, clamps the requested page into the valid range
// and fetches just that slice. A page past the end returns the last page's
// remainder instead of erroring.
func (s *FeedService) assemble(ctx context.Context, f postPort.Filter, page int) (*feedPort.Page, error) {
	total, err := s.PostRepository.Count(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := s.PostRepository.ListPage(ctx, f, (page-1)*PageSize, PageSize)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	dtos := make([]postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, postPort.FromEntity(p))
	}
	return &feedPort.Page{
		Posts: dtos,
		PageInfo: feedPort.PageInfo{
			Page:       page,
			PageSize:   PageSize,
			TotalPages: totalPages,
			TotalItems: total,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}, nil
}
