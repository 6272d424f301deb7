package handler

import (
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/config"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/dto"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/consts"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/response"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/upload"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc  service.UserService
	sessions session.Store
	userDir  string
}

func NewUserHandler(userSvc service.UserService, sessions session.Store, uploadCfg config.UploadConfig) *UserHandler {
	return &UserHandler{
		userSvc:  userSvc,
		sessions: sessions,
		userDir:  uploadCfg.UserDir,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBind(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}

	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		name, err := upload.SaveImage(fileHeader, s.userDir)
		if err != nil {
			response.Error(c, err)
			return
		}
		registerDTO.ProfileImage = name
	}

	user, err := s.userSvc.Register(c.Request.Context(), &registerDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBind(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	sessionID := session.NewID()
	sessionUser := session.User{
		Email:        user.Email,
		Nickname:     user.Nickname,
		ProfileImage: user.ProfileImage,
	}
	if err := s.sessions.Save(c.Request.Context(), sessionID, sessionUser); err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(consts.SessionCookieName, sessionID, int(s.sessions.TTL().Seconds()), "/", "", false, true)
	response.Success(c, user)
}

func (s *UserHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(consts.SessionIDKey)
	if sessionID != "" {
		if err := s.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			response.Error(c, err)
			return
		}
	}
	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// GetSession returns the identity snapshot of the current session.
func (s *UserHandler) GetSession(c *gin.Context) {
	user := currentUser(c)
	response.Success(c, dto.UserDTO{
		Email:        user.Email,
		Nickname:     user.Nickname,
		ProfileImage: user.ProfileImage,
	})
}

func (s *UserHandler) CheckNickname(c *gin.Context) {
	nickname := c.Query("nickname")
	if nickname == "" {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}
	available, err := s.userSvc.CheckNickname(c.Request.Context(), nickname)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NicknameCheckDTO{Available: available})
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	user, err := s.userSvc.GetUser(c.Request.Context(), currentUser(c).Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// UpdateProfile changes nickname and/or avatar, propagates the new
// author snapshot to authored content and refreshes the session copy.
func (s *UserHandler) UpdateProfile(c *gin.Context) {
	sessionUser := currentUser(c)

	var updateDTO dto.UpdateProfileDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	if fileHeader, err := c.FormFile("profileImage"); err == nil {
		name, err := upload.SaveImage(fileHeader, s.userDir)
		if err != nil {
			response.Error(c, err)
			return
		}
		updateDTO.ProfileImage = &name
	}

	oldImage := sessionUser.ProfileImage

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), sessionUser.Email, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}

	if updateDTO.ProfileImage != nil && oldImage != consts.DefaultProfileImage && oldImage != *updateDTO.ProfileImage {
		upload.Remove(s.userDir, oldImage)
	}

	sessionID := c.GetString(consts.SessionIDKey)
	if sessionID != "" {
		refreshed := session.User{
			Email:        user.Email,
			Nickname:     user.Nickname,
			ProfileImage: user.ProfileImage,
		}
		if err := s.sessions.Save(c.Request.Context(), sessionID, refreshed); err != nil {
			response.Error(c, err)
			return
		}
	}

	response.Success(c, user)
}

func (s *UserHandler) ChangePassword(c *gin.Context) {
	var passwordDTO dto.ChangePasswordDTO
	if err := c.ShouldBind(&passwordDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := dto.Validate(&passwordDTO); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.userSvc.UpdatePassword(c.Request.Context(), currentUser(c).Email, &passwordDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) DeleteAccount(c *gin.Context) {
	if err := s.userSvc.DeleteAccount(c.Request.Context(), currentUser(c).Email); err != nil {
		response.Error(c, err)
		return
	}

	sessionID := c.GetString(consts.SessionIDKey)
	if sessionID != "" {
		_ = s.sessions.Delete(c.Request.Context(), sessionID)
	}
	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// currentUser reads the session user injected by the auth middleware.
// The zero value means anonymous.
func currentUser(c *gin.Context) session.User {
	if v, ok := c.Get(consts.SessionUserKey); ok {
		if user, ok := v.(session.User); ok {
			return user
		}
	}
	return session.User{}
}
