package api

import "github.com/100-hours-a-week/2-zino-heo-community-be/internal/api/handler"

// HandlersGroup bundles every initialized handler.
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
}
