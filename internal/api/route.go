package api

import (
	"net/http"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/config"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/middleware"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/logger"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, sessions session.Store, uploadCfg config.UploadConfig) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.Static("/userUploads", uploadCfg.UserDir)
	r.Static("/boardUploads", uploadCfg.BoardDir)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", group.UserHandler.Login)

			sessionGroup := authGroup.Group("")
			sessionGroup.Use(middleware.AuthMiddleware(sessions))
			{
				sessionGroup.GET("/session", group.UserHandler.GetSession)
				sessionGroup.POST("/logout", group.UserHandler.Logout)
			}
		}

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.GET("/check-nickname", group.UserHandler.CheckNickname)

			authedGroup := userGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware(sessions))
			{
				authedGroup.GET("/profile", group.UserHandler.GetProfile)
				authedGroup.PUT("/update", group.UserHandler.UpdateProfile)
				authedGroup.PUT("/password/update-password", group.UserHandler.ChangePassword)
				authedGroup.DELETE("/delete", group.UserHandler.DeleteAccount)
			}
		}

		boardGroup := apiGroup.Group("/board")
		{
			boardGroup.GET("", group.PostHandler.ListPosts)
			boardGroup.GET("/:id/likes", group.PostActionHandler.ListLikes)

			viewGroup := boardGroup.Group("")
			viewGroup.Use(middleware.AuthOptionalMiddleware(sessions))
			{
				viewGroup.GET("/:id", group.PostHandler.GetPost)
			}

			authedGroup := boardGroup.Group("")
			authedGroup.Use(middleware.AuthMiddleware(sessions))
			{
				authedGroup.POST("/create", group.PostHandler.CreatePost)
				authedGroup.PATCH("/:id/postupdate", group.PostHandler.UpdatePost)
				authedGroup.DELETE("/:id/delete", group.PostHandler.DeletePost)

				authedGroup.PUT("/:id/like", group.PostActionHandler.ToggleLike)

				authedGroup.POST("/:id/comments", group.PostActionHandler.CreateComment)
				authedGroup.PATCH("/:id/comments/:commentId", group.PostActionHandler.UpdateComment)
				authedGroup.DELETE("/:id/comments/:commentId", group.PostActionHandler.DeleteComment)
			}
		}
	}

	return r
}
