package handler

import (
	"errors"
	"strconv"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/config"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/response"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/upload"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc   service.PostService
	actionSvc service.PostActionService
	boardDir  string
}

func NewPostHandler(postSvc service.PostService, actionSvc service.PostActionService, uploadCfg config.UploadConfig) *PostHandler {
	return &PostHandler{
		postSvc:   postSvc,
		actionSvc: actionSvc,
		boardDir:  uploadCfg.BoardDir,
	}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	posts, err := s.postSvc.ListPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var createDTO dto.PostCreateDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		name, err := upload.SaveImage(fileHeader, s.boardDir)
		if err != nil {
			response.Error(c, err)
			return
		}
		createDTO.Image = name
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), currentUser(c), &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPost returns the full post. Reading counts as a view unless the
// same user already viewed this post within the throttle window; a
// throttled read still carries the post, flagged with code 429.
func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	viewErr := s.actionSvc.TrackPostView(c.Request.Context(), currentUser(c).Email, postID)
	if viewErr != nil && !errors.Is(viewErr, service.ErrViewRateLimited) {
		response.Error(c, viewErr)
		return
	}

	post, err := s.postSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if errors.Is(viewErr, service.ErrViewRateLimited) {
		response.FailWithData(c, response.TooManyRequests, viewErr.Error(), post)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var updateDTO dto.PostUpdateDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		name, err := upload.SaveImage(fileHeader, s.boardDir)
		if err != nil {
			response.Error(c, err)
			return
		}
		updateDTO.Image = &name
	}

	var oldImage string
	if updateDTO.Image != nil {
		if existing, err := s.postSvc.GetPostDetail(c.Request.Context(), postID); err == nil && existing.Image != nil {
			oldImage = *existing.Image
		}
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), currentUser(c).Email, postID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	if oldImage != "" && updateDTO.Image != nil && oldImage != *updateDTO.Image {
		upload.Remove(s.boardDir, oldImage)
	}

	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var image string
	if existing, err := s.postSvc.GetPostDetail(c.Request.Context(), postID); err == nil && existing.Image != nil {
		image = *existing.Image
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), currentUser(c).Email, postID); err != nil {
		response.Error(c, err)
		return
	}

	upload.Remove(s.boardDir, image)
	response.Success(c, nil)
}

// parseID reads a positive numeric path parameter, failing the request
// with a 400 envelope when it is malformed.
func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return 0, false
	}
	return id, true
}
