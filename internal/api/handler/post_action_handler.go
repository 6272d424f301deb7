package handler

import (
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/response"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	actionSvc service.PostActionService
}

func NewPostActionHandler(actionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{actionSvc: actionSvc}
}

func (s *PostActionHandler) ToggleLike(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	result, err := s.actionSvc.ToggleLike(c.Request.Context(), currentUser(c).Email, postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *PostActionHandler) ListLikes(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	likes, err := s.actionSvc.ListLikes(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, likes)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var createDTO dto.CommentCreateDTO
	if err := c.ShouldBind(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&createDTO); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.CreateComment(c.Request.Context(), currentUser(c), postID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) UpdateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var updateDTO dto.CommentUpdateDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	comment, err := s.actionSvc.UpdateComment(c.Request.Context(), currentUser(c).Email, postID, commentID, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := s.actionSvc.DeleteComment(c.Request.Context(), currentUser(c).Email, postID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
