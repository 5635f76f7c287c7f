package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plume/internal/adapters/httpapi/middleware"
)

type FollowController struct{ fc FollowUseCase }

func NewFollowController(fc FollowUseCase) *FollowController {
	return &FollowController{fc: fc}
}

// Follow adds the edge requester → :username. Following an already followed
// author answers OK again; only a self-follow is rejected.
func (ctl *FollowController) Follow(c *gin.Context) {
	err := ctl.fc.Follow(c.Request.Context(), middleware.UserID(c), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "following"})
}

func (ctl *FollowController) Unfollow(c *gin.Context) {
	err := ctl.fc.Unfollow(c.Request.Context(), middleware.UserID(c), c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}
