package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"plume/internal/adapters/httpapi/middleware"
	commentPort "plume/internal/ports/comment"
	feedPort "plume/internal/ports/feed"
	groupPort "plume/internal/ports/group"
	"plume/internal/ports/pagecache"
	postPort "plume/internal/ports/post"
	userPort "plume/internal/ports/user"
)

// Inbound use-case interfaces: what the controllers need from the services.

type UserUseCase interface {
	Register(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
	Login(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
}

type GroupUseCase interface {
	CreateGroup(ctx context.Context, title, description string) (*groupPort.GroupDTO, error)
	ListGroups(ctx context.Context) ([]*groupPort.GroupDTO, error)
	DeleteGroup(ctx context.Context, slug string) error
}

type PostUseCase interface {
	CreatePost(ctx context.Context, authorID uint, text, groupSlug string, image *postPort.Upload) (*postPort.PostDTO, error)
	EditPost(ctx context.Context, postID, editorID uint, text, groupSlug string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, postID, actorID uint) error
	PostDetail(ctx context.Context, postID uint) (*postPort.PostDTO, []commentPort.CommentDTO, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, postID, authorID uint, text string) (*commentPort.CommentDTO, error)
}

type FollowUseCase interface {
	Follow(ctx context.Context, userID uint, targetUsername string) error
	Unfollow(ctx context.Context, userID uint, targetUsername string) error
}

type FeedUseCase interface {
	Index(ctx context.Context, page int) (*feedPort.Page, error)
	GroupFeed(ctx context.Context, slug string, page int) (*feedPort.GroupPage, error)
	ProfileFeed(ctx context.Context, username string, requesterID uint, page int) (*feedPort.ProfilePage, error)
	FollowingFeed(ctx context.Context, requesterID uint, page int) (*feedPort.Page, error)
}

// SetupRoutes wires the controllers; use cases and the page cache are
// injected from the bootstrap.
func SetupRoutes(
	userUC UserUseCase,
	groupUC GroupUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	followUC FollowUseCase,
	feedUC FeedUseCase,
	cache pagecache.PageCache,
	jwtKey []byte,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.Default()

	uc := NewUserController(userUC)
	gc := NewGroupController(groupUC)
	pc := NewPostController(postUC, commentUC)
	fc := NewFollowController(followUC)
	fd := NewFeedController(feedUC, cache, logger)

	auth := middleware.RequireAuth(jwtKey)
	maybeAuth := middleware.OptionalAuth(jwtKey)

	r.POST("/register", uc.Register)
	r.POST("/login", uc.Login)

	// Read paths. The index is requester-independent and cached; the profile
	// carries a following flag, so identity is picked up when present.
	r.GET("/", fd.Index)
	r.GET("/groups", gc.ListGroups)
	r.GET("/group/:slug", fd.GroupFeed)
	r.GET("/profile/:username", maybeAuth, fd.ProfileFeed)
	r.GET("/posts/:id", pc.PostDetail)

	// Write paths and the personal feed need an authenticated requester.
	r.POST("/group", auth, gc.CreateGroup)
	r.POST("/group/:slug/delete", auth, gc.DeleteGroup)
	r.POST("/posts", auth, pc.CreatePost)
	r.POST("/posts/:id/edit", auth, pc.EditPost)
	r.POST("/posts/:id/delete", auth, pc.DeletePost)
	r.POST("/posts/:id/comments", auth, pc.AddComment)
	r.GET("/follow", auth, fd.FollowingFeed)
	r.POST("/profile/:username/follow", auth, fc.Follow)
	r.POST("/profile/:username/unfollow", auth, fc.Unfollow)

	return r
}
