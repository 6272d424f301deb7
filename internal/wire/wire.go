package wire

import (
	"fmt"
	"time"

	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/config"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/handler"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/database"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/pkg/session"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/repository/jsonfile"
	"github.com/100-hours-a-week/2-zino-heo-community-be/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer holds the top-level components of the app.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

type repos struct {
	user    repository.UserRepo
	post    repository.PostRepo
	comment repository.CommentRepo
	like    repository.LikeRepo
}

// BuildApplication wires repositories, services and handlers together.
// The storage backend is selected by configuration: "mysql" or
// "jsonfile".
func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	var (
		r  repos
		db *gorm.DB
	)

	switch cfg.Storage.Backend {
	case "mysql":
		var err error
		db, err = database.NewGormDB(&cfg.DB)
		if err != nil {
			return nil, err
		}
		r = repos{
			user:    repository.NewUserRepo(db),
			post:    repository.NewPostRepo(db),
			comment: repository.NewCommentRepo(db),
			like:    repository.NewLikeRepo(db),
		}
	case "jsonfile":
		store, err := jsonfile.NewStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		r = repos{
			user:    jsonfile.NewUserRepo(store),
			post:    jsonfile.NewPostRepo(store),
			comment: jsonfile.NewCommentRepo(store),
			like:    jsonfile.NewLikeRepo(store),
		}
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}

	userService := service.NewUserService(r.user, r.post, r.comment, r.like)
	postService := service.NewPostService(r.post, r.comment, r.like)
	actionService := service.NewPostActionService(r.post, r.comment, r.like, r.user)

	sessions := session.NewRedisStore(time.Duration(cfg.Session.TTLMinutes) * time.Minute)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService, sessions, cfg.Upload),
		PostHandler:       handler.NewPostHandler(postService, actionService, cfg.Upload),
		PostActionHandler: handler.NewPostActionHandler(actionService),
	}

	router := api.SetupRouter(handlers, sessions, cfg.Upload)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
