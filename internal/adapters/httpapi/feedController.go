package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"plume/internal/adapters/httpapi/middleware"
	"plume/internal/ports/pagecache"
)

type FeedController struct {
	fc     FeedUseCase
	cache  pagecache.PageCache
	logger *zap.Logger
}

func NewFeedController(fc FeedUseCase, cache pagecache.PageCache, logger *zap.Logger) *FeedController {
	return &FeedController{fc: fc, cache: cache, logger: logger}
}

// Index serves the global feed through the page cache. The cache key is
// fixed: the index render does not branch on requester or query parameters,
// so one body serves everyone until the TTL runs out. Writes never
// invalidate it; a just-deleted post may stay visible for up to the TTL.
func (ctl *FeedController) Index(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok, err := ctl.cache.Get(ctx, pagecache.IndexKey); err != nil {
		ctl.logger.Warn("page cache read failed", zap.Error(err))
	} else if ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	page, err := ctl.fc.Index(ctx, pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	body, err := json.Marshal(page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if err := ctl.cache.Put(ctx, pagecache.IndexKey, body, pagecache.IndexTTL); err != nil {
		ctl.logger.Warn("page cache write failed", zap.Error(err))
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (ctl *FeedController) GroupFeed(c *gin.Context) {
	page, err := ctl.fc.GroupFeed(c.Request.Context(), c.Param("slug"), pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) ProfileFeed(c *gin.Context) {
	page, err := ctl.fc.ProfileFeed(c.Request.Context(), c.Param("username"), middleware.UserID(c), pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *FeedController) FollowingFeed(c *gin.Context) {
	page, err := ctl.fc.FollowingFeed(c.Request.Context(), middleware.UserID(c), pageParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// pageParam reads ?page=N. Malformed values fall back to page 1; range
// clamping happens in the feed service.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}
