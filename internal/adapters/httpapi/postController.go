package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"plume/internal/adapters/httpapi/middleware"
	"plume/internal/core/apperr"
	postPort "plume/internal/ports/post"
)

// maxImageBytes bounds how much of an uploaded image is read into memory.
const maxImageBytes = 10 << 20

type PostController struct {
	pc PostUseCase
	cc CommentUseCase
}

func NewPostController(pc PostUseCase, cc CommentUseCase) *PostController {
	return &PostController{pc: pc, cc: cc}
}

// CreatePost accepts a multipart form: text (required), group (slug,
// optional), image (file, optional).
func (ctl *PostController) CreatePost(c *gin.Context) {
	userID := middleware.UserID(c)

	text := c.PostForm("text")
	groupSlug := c.PostForm("group")

	var upload *postPort.Upload
	if fh, err := c.FormFile("image"); err == nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
			return
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxImageBytes))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable image"})
			return
		}
		upload = &postPort.Upload{Name: fh.Filename, Data: data}
	}

	p, err := ctl.pc.CreatePost(c.Request.Context(), userID, text, groupSlug, upload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// EditPost lets the author change text and group. Any other authenticated
// user is bounced to the read-only detail view instead of getting an error.
func (ctl *PostController) EditPost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Text  string `json:"text" binding:"required"`
		Group string `json:"group"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	p, err := ctl.pc.EditPost(c.Request.Context(), postID, middleware.UserID(c), req.Text, req.Group)
	if errors.Is(err, apperr.ErrForbidden) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", postID))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	err := ctl.pc.DeletePost(c.Request.Context(), postID, middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	p, comments, err := ctl.pc.PostDetail(c.Request.Context(), postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": p, "comments": comments})
}

func (ctl *PostController) AddComment(c *gin.Context) {
	postID, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	cm, err := ctl.cc.AddComment(c.Request.Context(), postID, middleware.UserID(c), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cm)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}
